package assets

import (
	"math"
	"time"

	"github.com/automoto/megaphone/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// oscillator generates one of the basic wave shapes for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     config.Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing a raw wave at full amplitude.
func NewOscillator(freq float64, duration time.Duration, wave config.Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case config.WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case config.WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case config.WaveSawtooth:
			val = 2.0 * (o.phase - 0.5)
		case config.WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay ramps gain exponentially from peak to floor over total samples
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	peak     float64
	floor    float64
}

// NewDecay wraps s with an exponential gain ramp.
func NewDecay(s beep.Streamer, duration time.Duration, peak, floor float64, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		total:    rate.N(duration),
		peak:     peak,
		floor:    floor,
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := 1.0
		if d.total > 0 {
			t = float64(d.position) / float64(d.total)
		}
		gain := d.peak * math.Pow(d.floor/d.peak, t)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so a zero volume is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ToneDuration converts a tone length in seconds to a time.Duration.
func ToneDuration(tone config.Tone) time.Duration {
	return time.Duration(tone.Duration * float64(time.Second))
}

// CreateTone builds the streamer for a beep at the given volume.
func CreateTone(tone config.Tone, volume float64, rate beep.SampleRate) beep.Streamer {
	dur := ToneDuration(tone)
	osc := NewOscillator(tone.Freq, dur, tone.Wave, rate)
	shaped := NewDecay(osc, dur, config.Audio.PeakGain, config.Audio.FloorGain, rate)
	return newVolume(shaped, volume)
}

// RenderTone synthesizes a tone into 16-bit little-endian stereo PCM, the
// layout ebiten's audio players consume.
func RenderTone(tone config.Tone, volume float64, sampleRate int) []byte {
	rate := beep.SampleRate(sampleRate)
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	frame := format.Width()

	s := CreateTone(tone, volume, rate)
	out := make([]byte, 0, rate.N(ToneDuration(tone))*frame)
	buf := make([][2]float64, 512)
	enc := make([]byte, frame)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			format.EncodeSigned(enc, buf[i])
			out = append(out, enc...)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}
