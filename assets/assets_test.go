package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/megaphone/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedLevels(t *testing.T) {
	levels, err := LoadLevels(assetFS, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 3)

	academy := levels[0]
	assert.Equal(t, "Academy of Lost Steel", academy.Name)
	assert.Equal(t, "Recover the Golden Olympic Bar", academy.Goal)
	assert.Equal(t, 2000, academy.Width)
	assert.Equal(t, 560, academy.Height)
	require.Len(t, academy.Platforms, 6)
	assert.Equal(t, gamemath.Rect{X: 0, Y: 520, W: 2200, H: 60}, academy.Platforms[0])
	require.Len(t, academy.Collectibles, 1)
	assert.Equal(t, "Bar", academy.Collectibles[0].Label)
	require.Len(t, academy.Enemies, 2)
	assert.Equal(t, 820.0, academy.Enemies[0].PatrolMin)
	assert.Equal(t, 1080.0, academy.Enemies[0].PatrolMax)
	assert.Nil(t, academy.Boss)
	require.NotNil(t, academy.Spawn)
	assert.Equal(t, PlayerSpawn{X: 40, Y: 480}, *academy.Spawn)

	cardio := levels[1]
	assert.Equal(t, 2200, cardio.Width)
	require.Len(t, cardio.Treadmills, 3)
	assert.Equal(t, 1.0, cardio.Treadmills[0].Dir)
	assert.Equal(t, -1.0, cardio.Treadmills[1].Dir)
	assert.Equal(t, gamemath.Rect{X: 600, Y: 430, W: 240, H: 16}, cardio.Treadmills[1].Rect)

	fortress := levels[2]
	assert.Equal(t, 1800, fortress.Width)
	assert.Empty(t, fortress.Collectibles)
	assert.Empty(t, fortress.Enemies)
	require.NotNil(t, fortress.Boss)
	assert.Equal(t, 6, fortress.Boss.HP)
	assert.Equal(t, gamemath.Rect{X: 1350, Y: 470, W: 60, H: 60}, fortress.Boss.Rect)
}

func TestLoadLevelsErrors(t *testing.T) {
	empty := fstest.MapFS{
		"levels/readme.txt": {Data: []byte("no maps here")},
	}
	_, err := LoadLevels(empty, "levels")
	assert.Error(t, err)

	_, err = LoadLevels(empty, "missing")
	assert.Error(t, err)

	broken := fstest.MapFS{
		"levels/bad.tmx": {Data: []byte("<map")},
	}
	_, err = LoadLevels(broken, "levels")
	assert.Error(t, err)
}

func TestCyclicIndex(t *testing.T) {
	tests := []struct {
		i, n       int
		next, prev int
	}{
		{0, 3, 1, 2},
		{1, 3, 2, 0},
		{2, 3, 0, 1},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, NextIndex(tt.i, tt.n), "next(%d,%d)", tt.i, tt.n)
		assert.Equal(t, tt.prev, PrevIndex(tt.i, tt.n), "prev(%d,%d)", tt.i, tt.n)
	}
}
