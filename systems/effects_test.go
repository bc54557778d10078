package systems_test

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

func TestMegaphoneHitFlashesAndFades(t *testing.T) {
	level := flatLevel(2000, 40)
	level.Enemies = []assets.EnemySpawn{{
		Rect:      gamemath.Rect{X: 300, Y: groundY - 30, W: 30, H: 30},
		PatrolMin: 250,
		PatrolMax: 350,
	}}
	sim := newSim(t, level)

	systems.ReleaseMegaphone(sim.ECS(), playerEntry(t, sim), 1.0)

	flash := components.Flash.Get(firstOf(t, sim, tags.Enemy))
	assert.True(t, flash.Active())
	assert.Equal(t, cfg.Effects.HitFlashColor, flash.Color)
	assert.False(t, components.Flash.Get(playerEntry(t, sim)).Active())

	stepN(sim, 30, press())
	assert.False(t, components.Flash.Get(firstOf(t, sim, tags.Enemy)).Active())
}

func TestHeavyBossHitShakesCamera(t *testing.T) {
	sim := newSim(t, bossLevel())
	camera := firstOf(t, sim, components.Camera)

	systems.ReleaseMegaphone(sim.ECS(), playerEntry(t, sim), 0.5)
	assert.False(t, camera.HasComponent(components.ScreenShake), "light hits do not shake")

	systems.ReleaseMegaphone(sim.ECS(), playerEntry(t, sim), cfg.Megaphone.MaxCharge)
	require.True(t, camera.HasComponent(components.ScreenShake))
	assert.Equal(t, cfg.Effects.HeavyShakeIntensity, components.ScreenShake.Get(camera).Intensity)
	assert.True(t, components.Flash.Get(firstOf(t, sim, tags.Boss)).Active())
}

func TestScreenShakeEnds(t *testing.T) {
	sim := newSim(t, flatLevel(2000, 40))
	camera := firstOf(t, sim, components.Camera)

	systems.TriggerScreenShake(sim.ECS(), 5, 0.2)
	require.True(t, camera.HasComponent(components.ScreenShake))

	// A weaker shake does not cut the stronger one short
	systems.TriggerScreenShake(sim.ECS(), 1, 5)
	assert.Equal(t, 0.2, components.ScreenShake.Get(camera).Duration)

	stepN(sim, 30, press())
	assert.False(t, camera.HasComponent(components.ScreenShake))
	assert.Zero(t, components.Camera.Get(camera).Position.X)
}

func TestContactFlashesPlayer(t *testing.T) {
	level := flatLevel(2000, 500)
	level.Enemies = []assets.EnemySpawn{{
		Rect:      gamemath.Rect{X: 500, Y: standY, W: 30, H: 30},
		PatrolMin: 0,
		PatrolMax: 1900,
	}}
	sim := newSim(t, level)

	sim.Step(cfg.Loop.StepSize, press())

	flash := components.Flash.Get(playerEntry(t, sim))
	assert.True(t, flash.Active())
	assert.Equal(t, cfg.Effects.DamageFlashColor, flash.Color)
}
