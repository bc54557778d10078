package systems

import (
	"fmt"

	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups removes every collectible the player overlaps.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || isFainted(playerEntry) {
		return
	}
	playerRect := components.Object.Get(playerEntry).Rect()

	var picked []*donburi.Entry
	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		if playerRect.Overlaps(components.Object.Get(e).Rect()) {
			picked = append(picked, e)
		}
	})

	for _, e := range picked {
		label := components.Collectible.Get(e).Label
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		ecs.World.Remove(e.Entity())

		SetStatus(ecs, fmt.Sprintf(cfg.Message.Collected, label))
		PlaySFX(ecs, cfg.SoundPickup)
	}
}

// UpdateProgression asks for the next level once the objective is met.
func UpdateProgression(ecs *ecs.ECS) {
	if !LevelComplete(ecs) {
		return
	}
	SetStatus(ecs, cfg.Message.LevelComplete)
	RequestLevel(ecs, components.LevelRequestNext)
}

// LevelComplete reports whether every collectible is gone and the player has
// passed the exit threshold near the right edge.
func LevelComplete(ecs *ecs.ECS) bool {
	if CollectiblesLeft(ecs) > 0 {
		return false
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || isFainted(playerEntry) {
		return false
	}

	width := currentLevelWidth(ecs)
	return components.Object.Get(playerEntry).X > width-cfg.Progression.ExitMargin
}

// CollectiblesLeft counts the collectibles still in the level.
func CollectiblesLeft(ecs *ecs.ECS) int {
	n := 0
	tags.Collectible.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}
