package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SetStatus replaces the HUD message and restarts its highlight.
func SetStatus(ecs *ecs.ECS, text string) {
	status := getOrCreateStatus(ecs)
	status.Text = text
	status.Highlight = gween.New(1, 0, cfg.HUD.HighlightIn, ease.OutQuad)
	status.HighlightLevel = 1
}

// StatusText returns the current HUD message.
func StatusText(ecs *ecs.ECS) string {
	return getOrCreateStatus(ecs).Text
}

// UpdateStatus advances the message highlight.
func UpdateStatus(ecs *ecs.ECS) {
	status := getOrCreateStatus(ecs)
	if status.Highlight == nil {
		return
	}

	level, done := status.Highlight.Update(float32(frameDt(ecs)))
	status.HighlightLevel = level
	if done {
		status.Highlight = nil
		status.HighlightLevel = 0
	}
}

func getOrCreateStatus(ecs *ecs.ECS) *components.StatusData {
	entry, ok := components.Status.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Status))
	}
	return components.Status.Get(entry)
}
