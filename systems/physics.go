package systems

import (
	"github.com/automoto/megaphone/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity into every body's vertical speed.
// Movement and resolution happen in the collision and actor systems.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := frameDt(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// A fainted player stays parked until the level is reset
		if isFainted(e) {
			return
		}

		physics := components.Physics.Get(e)
		physics.SpeedY += physics.Gravity * dt
	})
}

func isFainted(e *donburi.Entry) bool {
	return e.HasComponent(components.Player) && components.Player.Get(e).Fainted
}
