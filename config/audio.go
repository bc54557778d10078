package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundMegaphoneRelease
	SoundBossHit
	SoundPlayerHit
	SoundBossContact
	SoundPickup
	SoundMenuSelect
)

// Wave is the oscillator shape of a synthesized tone
type Wave int

const (
	WaveSquare Wave = iota
	WaveSawtooth
	WaveTriangle
	WaveSine
)

// Tone describes a fire-and-forget beep
type Tone struct {
	Freq     float64 // Hz
	Duration float64 // seconds
	Wave     Wave
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	PeakGain      float64 // gain at tone start
	FloorGain     float64 // gain reached at tone end (exponential ramp)
	DefaultSFXVol float64
	SettingsKey   string
}

var Audio AudioConfig

// Tones maps sound IDs to their tone definitions
var Tones map[SoundID]Tone

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		PeakGain:      0.12,
		FloorGain:     0.001,
		DefaultSFXVol: 1.0,
		SettingsKey:   "settings",
	}

	Tones = map[SoundID]Tone{
		SoundJump:             {Freq: 660, Duration: 0.08, Wave: WaveSawtooth},
		SoundMegaphoneRelease: {Freq: 200, Duration: 0.18, Wave: WaveTriangle},
		SoundBossHit:          {Freq: 120, Duration: 0.2, Wave: WaveSine},
		SoundPlayerHit:        {Freq: 90, Duration: 0.15, Wave: WaveSquare},
		SoundBossContact:      {Freq: 70, Duration: 0.18, Wave: WaveSquare},
		SoundPickup:           {Freq: 880, Duration: 0.1, Wave: WaveTriangle},
		SoundMenuSelect:       {Freq: 520, Duration: 0.06, Wave: WaveSquare},
	}
}
