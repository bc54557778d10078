package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	labelPause  = "Pause"
	labelResume = "Resume"
	labelNext   = "Next level"
	labelPrev   = "Previous level"
)

// ControlBar is the row of buttons in the top-right corner of the game
// screen: pause/resume and level navigation.
type ControlBar struct {
	UI *ebitenui.UI

	// Callbacks
	OnTogglePause func() bool // returns the new pause state
	OnNextLevel   func()
	OnPrevLevel   func()

	pauseButton *widget.Button
	face        text.Face
}

// NewControlBar creates the control bar. Callbacks may be nil.
func NewControlBar(onTogglePause func() bool, onNext, onPrev func()) (*ControlBar, error) {
	cb := &ControlBar{
		OnTogglePause: onTogglePause,
		OnNextLevel:   onNext,
		OnPrevLevel:   onPrev,
	}

	if err := cb.loadFonts(); err != nil {
		return nil, err
	}
	cb.buildUI()

	return cb, nil
}

func (cb *ControlBar) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	cb.face = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	return nil
}

func (cb *ControlBar) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	cb.pauseButton = cb.newButton(labelPause, cb.darkButtonImage(), color.RGBA{255, 255, 255, 255}, func() {
		if cb.OnTogglePause != nil {
			cb.SetPaused(cb.OnTogglePause())
		}
	})
	row.AddChild(cb.pauseButton)

	row.AddChild(cb.newButton(labelNext, cb.lightButtonImage(), color.RGBA{20, 20, 20, 255}, func() {
		if cb.OnNextLevel != nil {
			cb.OnNextLevel()
		}
	}))
	row.AddChild(cb.newButton(labelPrev, cb.lightButtonImage(), color.RGBA{20, 20, 20, 255}, func() {
		if cb.OnPrevLevel != nil {
			cb.OnPrevLevel()
		}
	}))

	rootContainer.AddChild(row)
	cb.UI = &ebitenui.UI{Container: rootContainer}
}

func (cb *ControlBar) newButton(label string, img *widget.ButtonImage, idle color.Color, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 26),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &cb.face, &widget.ButtonTextColor{
			Idle:    idle,
			Hover:   idle,
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetPaused updates the pause button label.
func (cb *ControlBar) SetPaused(paused bool) {
	if cb.pauseButton == nil {
		return
	}
	if textWidget := cb.pauseButton.Text(); textWidget != nil {
		textWidget.Label = pauseLabel(paused)
	}
}

func pauseLabel(paused bool) string {
	if paused {
		return labelResume
	}
	return labelPause
}

func (cb *ControlBar) darkButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{17, 17, 17, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{45, 45, 45, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{0, 0, 0, 255}),
	}
}

func (cb *ControlBar) lightButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{239, 239, 239, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{220, 220, 220, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{200, 200, 200, 255}),
	}
}

func (cb *ControlBar) Update() {
	cb.UI.Update()
}

func (cb *ControlBar) Draw(screen *ebiten.Image) {
	cb.UI.Draw(screen)
}
