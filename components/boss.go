package components

import "github.com/yohamta/donburi"

type BossData struct {
	StunTimer float64
	MaxHP     int  // for the health bar outline
	Defeated  bool // hit points reached zero; only the status message changes
}

var Boss = donburi.NewComponentType[BossData]()
