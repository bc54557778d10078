package factory

import (
	"github.com/automoto/megaphone/archetypes"
	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, spawn assets.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	r := spawn.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	left, right := spawn.PatrolMin, spawn.PatrolMax
	if left == 0 && right == 0 {
		left = r.X - cfg.Enemy.DefaultPatrolHW
		right = r.X + cfg.Enemy.DefaultPatrolHW
	}
	if left > right {
		left, right = right, left
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction:   components.Vector{X: cfg.DirectionRight},
		PatrolLeft:  left,
		PatrolRight: right,
		PatrolSpeed: cfg.Enemy.PatrolSpeed,
		StunTimer:   0,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
	})

	addToSpace(ecs, obj)
	return enemy
}
