package archetypes

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Treadmill = newArchetype(
		tags.Treadmill,
		components.Treadmill,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Collectible,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Flash,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Object,
		components.Health,
		components.Physics,
		components.Flash,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
