package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds velocity in px/s. Every field is set by the factory.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	MaxSpeed float64 // 0 means unclamped
	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
