package assets

import (
	"github.com/automoto/megaphone/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type toneKey struct {
	tone   config.Tone
	volume float64
}

// AudioLoader synthesizes and caches tone PCM for an audio context
type AudioLoader struct {
	sfxCache map[toneKey][]byte // Cache rendered PCM per tone and volume
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[toneKey][]byte),
		context:  ctx,
	}
}

// PCM returns the rendered bytes for a tone, rendering on first use.
func (l *AudioLoader) PCM(tone config.Tone, volume float64) []byte {
	key := toneKey{tone: tone, volume: volume}
	if cached, ok := l.sfxCache[key]; ok {
		return cached
	}
	pcm := RenderTone(tone, volume, l.context.SampleRate())
	l.sfxCache[key] = pcm
	return pcm
}

// Preload renders every configured tone so the first play has no lag.
func (l *AudioLoader) Preload(volume float64) {
	for _, tone := range config.Tones {
		l.PCM(tone, volume)
	}
}

// LoadSFX returns a new player for a tone each time.
func (l *AudioLoader) LoadSFX(tone config.Tone, volume float64) *audio.Player {
	return l.context.NewPlayerFromBytes(l.PCM(tone, volume))
}
