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

// UpdateCollisions moves the player one axis at a time and pushes it out of
// every solid it ends up inside, then applies treadmill drift.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := frameDt(ecs)
	solids := solidObjects(ecs)
	width := currentLevelWidth(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if isFainted(e) {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		obj.X += physics.SpeedX * dt
		if width > 0 {
			obj.X = gamemath.Clamp(obj.X, 0, width-obj.W)
		}
		resolveObjectHorizontalCollision(physics, obj, solids)

		obj.Y += physics.SpeedY * dt
		resolveObjectVerticalCollision(physics, obj, solids)

		applyTreadmills(ecs, physics, obj, dt)
	})
}

// resolveObjectHorizontalCollision snaps obj to the edge of any solid it
// overlaps on the side it approached from and stops horizontal movement.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, obj *resolv.Object, solids []*resolv.Object) {
	for _, solid := range solids {
		r := objectRect(solid)
		if !objectRect(obj).Overlaps(r) {
			continue
		}
		if physics.SpeedX > 0 {
			obj.X = r.X - obj.W
		} else if physics.SpeedX < 0 {
			obj.X = r.X + r.W
		}
		physics.SpeedX = 0
	}
}

// resolveObjectVerticalCollision is the vertical counterpart. Landing on a
// solid records it as the ground.
func resolveObjectVerticalCollision(physics *components.PhysicsData, obj *resolv.Object, solids []*resolv.Object) {
	physics.OnGround = nil

	for _, solid := range solids {
		r := objectRect(solid)
		if !objectRect(obj).Overlaps(r) {
			continue
		}
		if physics.SpeedY > 0 {
			obj.Y = r.Y - obj.H
			physics.OnGround = solid
		} else if physics.SpeedY < 0 {
			obj.Y = r.Y + r.H
		}
		physics.SpeedY = 0
	}
}

// landOnSolids integrates vertical speed and resolves only downward hits.
// Enemies and the boss use it: they walk through walls and ceilings.
func landOnSolids(physics *components.PhysicsData, obj *resolv.Object, solids []*resolv.Object, dt float64) {
	obj.Y += physics.SpeedY * dt
	physics.OnGround = nil

	for _, solid := range solids {
		r := objectRect(solid)
		if physics.SpeedY > 0 && objectRect(obj).Overlaps(r) {
			obj.Y = r.Y - obj.H
			physics.SpeedY = 0
			physics.OnGround = solid
		}
	}
}

// applyTreadmills drifts a grounded player whose feet touch a treadmill.
// Treadmills sit on top of a platform of the same size, so the probe looks
// just below the feet.
func applyTreadmills(ecs *ecs.ECS, physics *components.PhysicsData, obj *resolv.Object, dt float64) {
	if physics.OnGround == nil {
		return
	}

	feet := objectRect(obj).Offset(0, cfg.Physics.FeetProbe)
	components.Treadmill.Each(ecs.World, func(e *donburi.Entry) {
		tm := components.Object.Get(e)
		if feet.Overlaps(tm.Rect()) {
			obj.X += components.Treadmill.Get(e).Dir * cfg.Treadmill.Speed * dt
		}
	})
}
