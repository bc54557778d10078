package factory

import (
	"github.com/automoto/megaphone/archetypes"
	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	"github.com/automoto/megaphone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, spawn assets.CollectibleSpawn) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	r := spawn.Rect
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvCollectible)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = collectible

	components.Object.SetValue(collectible, components.ObjectData{Object: obj})
	components.Collectible.SetValue(collectible, components.CollectibleData{Label: spawn.Label})
	addToSpace(ecs, obj)

	return collectible
}
