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

func CreateBoss(ecs *ecs.ECS, spawn assets.BossSpawn) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	r := spawn.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvBoss)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = boss
	components.Object.SetValue(boss, components.ObjectData{Object: obj})

	hp := spawn.HP
	if hp <= 0 {
		hp = cfg.Boss.BarOutlineMax
	}
	components.Health.SetValue(boss, components.HealthData{Current: hp, Max: hp})
	components.Boss.SetValue(boss, components.BossData{MaxHP: hp})
	components.Physics.SetValue(boss, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
	})

	addToSpace(ecs, obj)
	return boss
}
