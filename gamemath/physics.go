package gamemath

import "math"

// DampToZero multiplies speed by damping and snaps it to zero once its
// magnitude falls below threshold.
func DampToZero(speed, damping, threshold float64) float64 {
	speed *= damping
	if math.Abs(speed) < threshold {
		return 0
	}
	return speed
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp restricts v to [lo, hi]. When hi < lo the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates from a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// CountDown decreases a timer by dt without going below zero.
func CountDown(timer, dt float64) float64 {
	return math.Max(0, timer-dt)
}
