package factory

import (
	"github.com/automoto/megaphone/archetypes"
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction:   components.Vector{X: cfg.DirectionRight},
		InvulnTimer: 0,
		Cooldown:    0,
		Charge:      0,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	addToSpace(ecs, obj)
	return player
}
