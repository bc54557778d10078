package components

import "github.com/yohamta/donburi"

type CollectibleData struct {
	Label string
}

var Collectible = donburi.NewComponentType[CollectibleData]()
