package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelControls turns the reset and level navigation actions into a
// level request. It runs while paused.
func UpdateLevelControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	switch {
	case GetAction(input, cfg.ActionReset).JustPressed:
		RequestLevel(ecs, components.LevelRequestReset)
	case GetAction(input, cfg.ActionNextLevel).JustPressed:
		RequestLevel(ecs, components.LevelRequestNext)
	case GetAction(input, cfg.ActionPrevLevel).JustPressed:
		RequestLevel(ecs, components.LevelRequestPrev)
	}
}

// RequestLevel records a level change to be carried out after the step.
func RequestLevel(ecs *ecs.ECS, req components.LevelRequest) {
	if level := getLevel(ecs); level != nil {
		level.Request = req
	}
}

// PendingLevelRequest returns the request recorded during the last step.
func PendingLevelRequest(ecs *ecs.ECS) components.LevelRequest {
	if level := getLevel(ecs); level != nil {
		return level.Request
	}
	return components.LevelRequestNone
}

// CurrentLevelIndex returns the index of the level the world was built from.
func CurrentLevelIndex(ecs *ecs.ECS) int {
	if level := getLevel(ecs); level != nil {
		return level.LevelIndex
	}
	return 0
}

func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
