package assets

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/megaphone/config"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(pcm []byte, i int) int16 {
	return int16(binary.LittleEndian.Uint16(pcm[i*4:]))
}

func TestRenderToneLength(t *testing.T) {
	const rate = 44100
	for id, tone := range config.Tones {
		pcm := RenderTone(tone, 1, rate)
		want := beep.SampleRate(rate).N(ToneDuration(tone)) * 4
		assert.Len(t, pcm, want, "sound %d", id)
	}
}

func TestRenderToneDecays(t *testing.T) {
	tone := config.Tone{Freq: 90, Duration: 0.15, Wave: config.WaveSquare}
	pcm := RenderTone(tone, 1, 44100)
	require.NotEmpty(t, pcm)

	frames := len(pcm) / 4
	first := sampleAt(pcm, 0)
	last := sampleAt(pcm, frames-1)

	// Square wave starts high at peak gain and ends near the floor gain.
	assert.Greater(t, int(first), 0)
	assert.LessOrEqual(t, float64(first), config.Audio.PeakGain*32768+1)
	assert.Less(t, abs16(last), abs16(first))
}

func TestRenderToneMuted(t *testing.T) {
	tone := config.Tones[config.SoundPickup]
	pcm := RenderTone(tone, 0, 44100)
	require.NotEmpty(t, pcm)
	for _, b := range pcm {
		if b != 0 {
			t.Fatalf("expected silence, got non-zero byte")
		}
	}
}

func abs16(v int16) int {
	if v < 0 {
		return -int(v)
	}
	return int(v)
}
