package systems

import (
	"github.com/automoto/megaphone/components"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved object with the space's cells so
// the debug overlay and any cell queries see current positions.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Update()
		}
	})
}

func getSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// solidObjects returns the static colliders of the current level in the
// order they were added.
func solidObjects(ecs *ecs.ECS) []*resolv.Object {
	space := getSpace(ecs)
	if space == nil {
		return nil
	}

	var solids []*resolv.Object
	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvSolid) {
			solids = append(solids, obj)
		}
	}
	return solids
}

func objectRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// currentLevelWidth returns the active level width, or 0 without a level.
func currentLevelWidth(ecs *ecs.ECS) float64 {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0
	}
	level := components.Level.Get(entry)
	if level.CurrentLevel == nil {
		return 0
	}
	return float64(level.CurrentLevel.Width)
}
