package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/fonts"
	"github.com/automoto/megaphone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay on F1.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}

	space := getSpace(ecs)
	if space == nil {
		return
	}

	camX := cameraX(ecs)
	width := float64(screen.Bounds().Dx())

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < camX || obj.X > camX+width {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvTreadmill) {
			c = color.RGBA{255, 128, 0, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvEnemy) || obj.HasTags(tags.ResolvBoss) {
			c = color.RGBA{255, 0, 0, 255}
		}

		vector.StrokeRect(screen, float32(obj.X-camX), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	// Megaphone reach at full charge
	if playerEntry, ok := tags.Player.First(ecs.World); ok && !isFainted(playerEntry) {
		cx, cy := components.Object.Get(playerEntry).Rect().Center()
		r := MegaphoneRadius(cfg.Megaphone.MaxCharge)
		drawPath(screen, arcPath(cx-camX, cy, r, r, 0, 2*math.Pi, 48), 1, color.RGBA{0, 175, 185, 255})
	}

	frame := getOrCreateFrame(ecs)
	info := fmt.Sprintf("step %d  t=%.2fs  fps %.0f", frame.Step, frame.Elapsed, ebiten.ActualFPS())
	text.Draw(screen, info, fonts.Small.Get(), int(width)-160, 14, cfg.Colors.Text)
}
