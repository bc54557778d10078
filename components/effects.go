package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds
	Elapsed   float64 // seconds, drives the oscillation
	Offset    float64 // current horizontal offset
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tints an actor for a short time after a hit
type FlashData struct {
	Timer float64 // seconds remaining
	Color color.RGBA
}

// Active reports whether the tint should be drawn.
func (f *FlashData) Active() bool {
	return f.Timer > 0
}

var Flash = donburi.NewComponentType[FlashData]()
