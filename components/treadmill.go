package components

import "github.com/yohamta/donburi"

// TreadmillData marks a conveyor strip. It is not collidable on its own.
type TreadmillData struct {
	Dir float64 // -1 or 1
}

var Treadmill = donburi.NewComponentType[TreadmillData]()
