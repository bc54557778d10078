package systems

import (
	"log"
	"sync"

	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioDisabled      bool
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and renders every tone up front.
// Playback is best effort: if the context cannot be created, sounds are
// dropped for the rest of the session.
func InitAudio() {
	audioInitOnce.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Warning: Audio disabled: %v", r)
				audioDisabled = true
			}
		}()
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
		globalAudioLoader.Preload(effectiveVolume())
	})
}

// PlaySFX queues a configured sound effect.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	tone, ok := cfg.Tones[sound]
	if !ok {
		return
	}
	PlayTone(e, tone)
}

// PlayTone queues an arbitrary tone. Nothing is played until FlushAudio.
func PlayTone(e *ecs.ECS, tone cfg.Tone) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, tone)
}

// FlushAudio plays and clears the tones queued during the last steps.
func FlushAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, tone := range audioData.PendingSFX {
		playTone(tone)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlayToneNow plays a tone immediately, for scenes without a world.
func PlayToneNow(tone cfg.Tone) {
	playTone(tone)
}

func playTone(tone cfg.Tone) {
	volume := effectiveVolume()
	if volume <= 0 || audioDisabled || globalAudioLoader == nil {
		return
	}

	player := globalAudioLoader.LoadSFX(tone, volume)
	player.Play()
}

func effectiveVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalSFXVolume
}

// SetSFXVolume changes the SFX volume, clamped to 0..1
func SetSFXVolume(volume float64) {
	globalSFXVolume = gamemath.Clamp(volume, 0, 1)
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// SetMuted silences or restores every sound.
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted reports whether sounds are silenced.
func IsMuted() bool {
	return globalMuted
}

// ToggleMute flips mute, saves the choice and returns the new state.
func ToggleMute() bool {
	SetMuted(!globalMuted)
	SaveCurrentSettings()
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.Tone, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
