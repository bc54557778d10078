package factory

import (
	"github.com/automoto/megaphone/archetypes"
	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a solid, static platform.
func CreatePlatform(ecs *ecs.ECS, r gamemath.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = platform // Link for O(1) lookup

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

// CreateTreadmill creates a conveyor strip. Treadmills are drawn over a
// platform of the same size and never collide themselves.
func CreateTreadmill(ecs *ecs.ECS, spawn assets.TreadmillSpawn) *donburi.Entry {
	treadmill := archetypes.Treadmill.Spawn(ecs)

	r := spawn.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvTreadmill)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = treadmill

	components.Object.SetValue(treadmill, components.ObjectData{Object: obj})
	components.Treadmill.SetValue(treadmill, components.TreadmillData{Dir: spawn.Dir})
	addToSpace(ecs, obj)

	return treadmill
}
