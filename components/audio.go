package components

import (
	cfg "github.com/automoto/megaphone/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the pending tone queue (singleton component). Playback
// happens outside the world so headless worlds just accumulate tones.
type AudioData struct {
	PendingSFX []cfg.Tone
}

var Audio = donburi.NewComponentType[AudioData]()
