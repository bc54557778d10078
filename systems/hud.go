package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/fonts"
	"github.com/automoto/megaphone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// HUDLines returns the three HUD text lines: level title, player status and
// the last event message.
func HUDLines(ecs *ecs.ECS) [3]string {
	var lines [3]string

	if level := getLevel(ecs); level != nil && level.CurrentLevel != nil {
		lines[0] = fmt.Sprintf("%s - %s", level.CurrentLevel.Name, level.CurrentLevel.Goal)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		hp := components.Health.Get(playerEntry).Current
		megaphone := cfg.HUD.Ready
		if !player.Ready() {
			megaphone = cfg.HUD.Recharging
		}
		lines[1] = fmt.Sprintf("HP: %d | Megaphone: %s", max(hp, 0), megaphone)
	}

	lines[2] = StatusText(ecs)
	return lines
}

// DrawHUD renders the HUD text in the top-left corner. A new status message
// starts highlighted and fades back to the normal text color.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	lines := HUDLines(ecs)

	for i, line := range lines {
		if line == "" {
			continue
		}
		clr := color.Color(cfg.Colors.Text)
		if i == 2 {
			clr = statusColor(getOrCreateStatus(ecs).HighlightLevel)
		}
		text.Draw(screen, line, face, cfg.HUD.X, cfg.HUD.LineY[i], clr)
	}
}

func statusColor(level float32) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*level)
	}
	base, hi := cfg.Colors.Text, cfg.BrightOrange
	return color.RGBA{R: lerp(base.R, hi.R), G: lerp(base.G, hi.G), B: lerp(base.B, hi.B), A: 255}
}

func textWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}
