package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs patrol or stun drift for every enemy, then lets it fall
// onto the platforms below.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := frameDt(ecs)
	solids := solidObjects(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		enemy.StunTimer = gamemath.CountDown(enemy.StunTimer, dt)
		if enemy.StunTimer > 0 {
			obj.X += physics.SpeedX * dt
			physics.SpeedX *= cfg.Enemy.StunDrag
		} else {
			patrol(enemy, physics, obj, dt)
		}

		landOnSolids(physics, obj, solids, dt)
	})
}

// patrol walks between the patrol bounds at constant speed, turning around
// exactly when a bound is crossed. After a stun the walk resumes in the
// direction the enemy was last drifting.
func patrol(enemy *components.EnemyData, physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	speed := enemy.PatrolSpeed

	dir := gamemath.Sign(physics.SpeedX)
	if dir == 0 {
		dir = enemy.Direction.X
	}
	physics.SpeedX = dir * speed

	obj.X += physics.SpeedX * dt
	if obj.X < enemy.PatrolLeft {
		obj.X = enemy.PatrolLeft
		physics.SpeedX = speed
	}
	if obj.X > enemy.PatrolRight {
		obj.X = enemy.PatrolRight
		physics.SpeedX = -speed
	}

	enemy.Direction.X = gamemath.Sign(physics.SpeedX)
}
