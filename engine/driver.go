// Package engine runs the simulation on a fixed timestep, decoupled from
// however often the host calls in.
package engine

import (
	"time"

	cfg "github.com/automoto/megaphone/config"
)

// Clock is the time source of a Driver.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// stepEpsilon absorbs float error so that exactly one step of elapsed time
// runs one step.
const stepEpsilon = 1e-9

// Driver is an accumulator based fixed-timestep scheduler. Elapsed time is
// clamped, accumulated, and spent in whole steps; the remainder carries over
// to the next call.
type Driver struct {
	clock      Clock
	stepSize   float64
	maxElapsed float64

	accumulator float64
	last        time.Time
	started     bool
}

// NewDriver creates a driver using the loop settings from config.
func NewDriver(clock Clock) *Driver {
	if clock == nil {
		clock = SystemClock
	}
	return &Driver{
		clock:      clock,
		stepSize:   cfg.Loop.StepSize,
		maxElapsed: cfg.Loop.MaxElapsed,
	}
}

// Tick measures the time since the previous Tick and advances by it. The
// first Tick only starts the clock.
func (d *Driver) Tick(step func(dt float64)) int {
	now := d.clock.Now()
	if !d.started {
		d.started = true
		d.last = now
		return 0
	}
	elapsed := now.Sub(d.last).Seconds()
	d.last = now
	return d.Advance(elapsed, step)
}

// Advance adds elapsed seconds to the accumulator and calls step once per
// whole step available. It returns the number of steps taken.
func (d *Driver) Advance(elapsed float64, step func(dt float64)) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > d.maxElapsed {
		elapsed = d.maxElapsed
	}
	d.accumulator += elapsed

	steps := 0
	for d.accumulator+stepEpsilon >= d.stepSize {
		step(d.stepSize)
		d.accumulator -= d.stepSize
		steps++
	}
	if d.accumulator < 0 {
		d.accumulator = 0
	}
	return steps
}

// Pending returns the accumulated time not yet spent on a step.
func (d *Driver) Pending() float64 {
	return d.accumulator
}

// Reset drops accumulated time and restarts the clock on the next Tick.
func (d *Driver) Reset() {
	d.accumulator = 0
	d.started = false
}
