package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction   Vector  // X is the facing sign
	InvulnTimer float64 // seconds of contact immunity left
	Cooldown    float64 // seconds before the megaphone can charge again
	Charge      float64 // seconds the attack has been held, capped
	Fainted     bool    // run ended; only a reset brings the player back
}

// Ready reports whether the megaphone can start charging.
func (p *PlayerData) Ready() bool {
	return p.Cooldown <= 0
}

var Player = donburi.NewComponentType[PlayerData]()
