package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	ground := Rect{X: 0, Y: 520, W: 2200, H: 60}

	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"resting on top", Rect{X: 40, Y: 472, W: 36, H: 48}, false},
		{"sunk one pixel", Rect{X: 40, Y: 473, W: 36, H: 48}, true},
		{"touching left edge", Rect{X: -36, Y: 530, W: 36, H: 10}, false},
		{"inside", Rect{X: 100, Y: 530, W: 10, H: 10}, true},
		{"far above", Rect{X: 100, Y: 0, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Overlaps(ground))
			assert.Equal(t, tt.want, ground.Overlaps(tt.r))
		})
	}
}

func TestCenterDistance(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 30, Y: 40, W: 10, H: 10}
	assert.InDelta(t, 50.0, a.CenterDistance(b), 1e-9)
}

func TestDampToZero(t *testing.T) {
	assert.InDelta(t, 85.0, DampToZero(100, 0.85, 1), 1e-9)
	assert.Equal(t, 0.0, DampToZero(1.1, 0.85, 1))
	assert.InDelta(t, -8.5, DampToZero(-10, 0.85, 1), 1e-9)
}

func TestClampHelpers(t *testing.T) {
	assert.Equal(t, 220.0, ClampSpeed(500, 220))
	assert.Equal(t, -220.0, ClampSpeed(-500, 220))
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 0.0, Clamp(5, 0, -1))
	assert.Equal(t, 0.0, CountDown(0.01, 0.016))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))
	assert.InDelta(t, 6.0, Lerp(0, 120, 0.05), 1e-9)
}
