package engine

import (
	"testing"

	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/systems"
	"github.com/automoto/megaphone/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLevels(n int) []assets.Level {
	levels := make([]assets.Level, n)
	for i := range levels {
		levels[i] = assets.Level{
			Name:      string(rune('A' + i)),
			Goal:      "goal",
			Width:     1200,
			Height:    560,
			Spawn:     &assets.PlayerSpawn{X: 40, Y: 472},
			Platforms: []gamemath.Rect{{X: 0, Y: 520, W: 1200, H: 40}},
		}
	}
	return levels
}

func input(actions ...cfg.ActionID) components.InputSnapshot {
	var snap components.InputSnapshot
	for _, a := range actions {
		snap[a] = true
	}
	return snap
}

func TestNewSimulationNeedsLevels(t *testing.T) {
	_, err := NewSimulation(nil, 0)
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestNewSimulationFallsBackToFirstLevel(t *testing.T) {
	sim, err := NewSimulation(testLevels(2), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, sim.LevelIndex())
	assert.Equal(t, "A", sim.Level().Name)
}

func TestLevelNavigationWraps(t *testing.T) {
	sim, err := NewSimulation(testLevels(3), 0)
	require.NoError(t, err)

	var loaded []int
	sim.OnLevelLoaded = func(index int, _ assets.Level) {
		loaded = append(loaded, index)
	}

	sim.PrevLevel()
	assert.Equal(t, 2, sim.LevelIndex())
	sim.NextLevel()
	assert.Equal(t, 0, sim.LevelIndex())
	sim.NextLevel()
	sim.NextLevel()
	sim.NextLevel()
	assert.Equal(t, 0, sim.LevelIndex())

	assert.Equal(t, []int{2, 0, 1, 2, 0}, loaded)
	assert.Equal(t, 3, sim.LevelCount())
}

func TestLevelKeysRequestRebuild(t *testing.T) {
	sim, err := NewSimulation(testLevels(3), 0)
	require.NoError(t, err)

	sim.Step(cfg.Loop.StepSize, input(cfg.ActionNextLevel))
	assert.Equal(t, 1, sim.LevelIndex())

	// Still held: no repeat
	sim.Step(cfg.Loop.StepSize, input(cfg.ActionNextLevel))
	assert.Equal(t, 1, sim.LevelIndex())

	sim.Step(cfg.Loop.StepSize, input())
	sim.Step(cfg.Loop.StepSize, input(cfg.ActionPrevLevel))
	assert.Equal(t, 0, sim.LevelIndex())
}

func TestResetRebuildsWorld(t *testing.T) {
	sim, err := NewSimulation(testLevels(1), 0)
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		sim.Step(cfg.Loop.StepSize, input(cfg.ActionMoveRight))
	}
	before := sim.ECS()
	p, ok := tags.Player.First(before.World)
	require.True(t, ok)
	require.Greater(t, components.Object.Get(p).X, 40.0)

	sim.Step(cfg.Loop.StepSize, input(cfg.ActionReset))
	assert.NotSame(t, before, sim.ECS())

	p, ok = tags.Player.First(sim.ECS().World)
	require.True(t, ok)
	assert.Equal(t, 40.0, components.Object.Get(p).X)
	assert.Equal(t, 0, systems.CurrentLevelIndex(sim.ECS()))

	after := sim.ECS()
	sim.Step(cfg.Loop.StepSize, input(cfg.ActionReset))
	assert.Same(t, after, sim.ECS(), "held reset does not rebuild again")
}

func TestRebuildKeepsPauseAndQueuedSounds(t *testing.T) {
	sim, err := NewSimulation(testLevels(2), 0)
	require.NoError(t, err)

	systems.PlaySFX(sim.ECS(), cfg.SoundPickup)
	require.True(t, sim.TogglePause())

	sim.NextLevel()

	assert.True(t, sim.Paused())
	pending := systems.GetOrCreateAudio(sim.ECS()).PendingSFX
	require.Len(t, pending, 1)
	assert.Equal(t, cfg.Tones[cfg.SoundPickup], pending[0])
}

func TestLevelKeysWorkWhilePaused(t *testing.T) {
	sim, err := NewSimulation(testLevels(2), 0)
	require.NoError(t, err)
	sim.TogglePause()

	sim.Step(cfg.Loop.StepSize, input(cfg.ActionNextLevel))

	assert.Equal(t, 1, sim.LevelIndex())
	assert.True(t, sim.Paused())
}
