package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on ESC or P.
// This system should run before every system wrapped in WithPauseCheck.
func UpdatePause(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		TogglePause(ecs)
	}
}

// TogglePause flips the pause flag and returns the new state.
func TogglePause(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	return pause.IsPaused
}

// IsPaused reports whether simulation systems are currently skipped.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// SetPaused forces the pause state, used when a world is rebuilt.
func SetPaused(ecs *ecs.ECS, paused bool) {
	GetOrCreatePause(ecs).IsPaused = paused
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFace := fonts.Title.Get()
	titleX := (width - textWidth(cfg.Pause.Title, titleFace)) / 2
	text.Draw(screen, cfg.Pause.Title, titleFace, titleX, height/2, cfg.Pause.TextColor)

	hintFace := fonts.Small.Get()
	hintX := (width - textWidth(cfg.Pause.Hint, hintFace)) / 2
	text.Draw(screen, cfg.Pause.Hint, hintFace, hintX, height/2+30, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
