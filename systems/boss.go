package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBoss steers the boss toward the player unless stunned. Running out
// of hit points only changes the status message; the boss stays in play.
func UpdateBoss(ecs *ecs.ECS) {
	dt := frameDt(ecs)
	solids := solidObjects(ecs)

	targetX, hasTarget := playerX(ecs)

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		boss := components.Boss.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		boss.StunTimer = gamemath.CountDown(boss.StunTimer, dt)
		if boss.StunTimer > 0 {
			obj.X += physics.SpeedX * dt
			physics.SpeedX *= cfg.Boss.StunDrag
		} else if hasTarget {
			dir := gamemath.Sign(targetX - obj.X)
			physics.SpeedX = gamemath.Lerp(physics.SpeedX, dir*cfg.Boss.ChaseSpeed, cfg.Boss.ChaseSmoothing)
			obj.X += physics.SpeedX * dt
		}

		landOnSolids(physics, obj, solids, dt)

		if !boss.Defeated && components.Health.Get(e).Current <= 0 {
			boss.Defeated = true
			SetStatus(ecs, cfg.Message.BossDefeated)
		}
	})
}

func playerX(ecs *ecs.ECS) (float64, bool) {
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return 0, false
	}
	return components.Object.Get(e).X, true
}
