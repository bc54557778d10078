package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/fonts"
	"github.com/automoto/megaphone/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// titleBob is how far, in pixels, the title drifts up and down.
const titleBob = 6

// MenuScene is the title screen shown before the game.
type MenuScene struct {
	sceneChanger SceneChanger
	next         func() interface{}

	bob     *gween.Tween
	bobUp   bool
	offset  float32
	prevSel bool
	once    sync.Once
}

// NewMenuScene creates a new menu scene. next builds the scene to switch to
// when the player starts.
func NewMenuScene(sc SceneChanger, next func() interface{}) *MenuScene {
	return &MenuScene{sceneChanger: sc, next: next}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	offset, done := ms.bob.Update(float32(cfg.Loop.StepSize))
	ms.offset = offset
	if done {
		ms.bobUp = !ms.bobUp
		ms.bob = newBob(ms.bobUp)
	}

	snap := systems.PollInput()
	selected := snap[cfg.ActionMenuSelect]
	if selected && !ms.prevSel {
		systems.PlayToneNow(cfg.Tones[cfg.SoundMenuSelect])
		ms.sceneChanger.ChangeScene(ms.next())
	}
	ms.prevSel = selected
}

func (ms *MenuScene) configure() {
	ms.bob = newBob(false)
	// Enter held from a previous screen must be released first
	ms.prevSel = systems.PollInput()[cfg.ActionMenuSelect]
}

func newBob(up bool) *gween.Tween {
	if up {
		return gween.New(titleBob, -titleBob, 1.2, ease.InOutSine)
	}
	return gween.New(-titleBob, titleBob, 1.2, ease.InOutSine)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	width := screen.Bounds().Dx()
	titleFace := fonts.Title.Get()
	hudFace := fonts.HUD.Get()

	y := int(cfg.Menu.TitleY + float64(ms.offset))
	drawCentered(screen, cfg.Menu.Title, titleFace, width, y, cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Subtitle, hudFace, width, y+36, cfg.Menu.TextColor)

	drawCentered(screen, cfg.Menu.Controls, hudFace, width, 320, cfg.Menu.TextColor)
	drawCentered(screen, cfg.Message.Intro, hudFace, width, 344, cfg.Menu.TextColor)
	drawCentered(screen, cfg.Menu.StartHint, hudFace, width, 420, cfg.Menu.TitleColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (width-w)/2, y, clr)
}
