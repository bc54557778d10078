package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Direction Vector // initial patrol direction

	// Patrol interval for the left edge of the body
	PatrolLeft  float64
	PatrolRight float64
	PatrolSpeed float64

	StunTimer float64 // seconds; while > 0 the enemy drifts instead of patrolling
}

var Enemy = donburi.NewComponentType[EnemyData]()
