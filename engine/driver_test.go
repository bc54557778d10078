package engine

import (
	"testing"
	"time"

	cfg "github.com/automoto/megaphone/config"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func TestDriverFirstTickOnlyStartsClock(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	d := NewDriver(clock)

	steps := 0
	assert.Equal(t, 0, d.Tick(func(float64) { steps++ }))
	assert.Zero(t, steps)
}

func TestDriverRunsOneStepPerStepSize(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	d := NewDriver(clock)
	d.Tick(func(float64) {})

	var dts []float64
	for i := 0; i < 10; i++ {
		clock.advance(seconds(cfg.Loop.StepSize))
		d.Tick(func(dt float64) { dts = append(dts, dt) })
	}

	assert.Len(t, dts, 10)
	for _, dt := range dts {
		assert.Equal(t, cfg.Loop.StepSize, dt)
	}
}

func TestDriverZeroElapsedRunsNothing(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	d := NewDriver(clock)
	d.Tick(func(float64) {})

	assert.Equal(t, 0, d.Tick(func(float64) { t.Fatal("unexpected step") }))
	assert.Zero(t, d.Pending())
}

func TestDriverAccumulatesRemainder(t *testing.T) {
	d := NewDriver(nil)
	noop := func(float64) {}

	half := cfg.Loop.StepSize / 2
	assert.Equal(t, 0, d.Advance(half, noop))
	assert.InDelta(t, half, d.Pending(), 1e-12)
	assert.Equal(t, 1, d.Advance(half, noop))
	assert.InDelta(t, 0, d.Pending(), 1e-9)
}

func TestDriverClampsLongFrames(t *testing.T) {
	d := NewDriver(nil)
	noop := func(float64) {}

	// A long stall counts as MaxElapsed, not as a burst of catch-up steps
	steps := d.Advance(5, noop)
	assert.Equal(t, int(cfg.Loop.MaxElapsed/cfg.Loop.StepSize), steps)
	assert.Less(t, d.Pending(), cfg.Loop.StepSize)

	d.Reset()
	assert.Equal(t, 0, d.Advance(-1, noop))
	assert.Zero(t, d.Pending())
}

func TestDriverResetRestartsClock(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	d := NewDriver(clock)
	d.Tick(func(float64) {})

	clock.advance(time.Hour)
	d.Reset()
	assert.Equal(t, 0, d.Tick(func(float64) {}))

	clock.advance(seconds(cfg.Loop.StepSize))
	assert.Equal(t, 1, d.Tick(func(float64) {}))
}
