package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StatusData is the HUD's last event message (singleton)
type StatusData struct {
	Text string

	// Highlight eases from 1 to 0 after each new message
	Highlight      *gween.Tween
	HighlightLevel float32
}

var Status = donburi.NewComponentType[StatusData]()
