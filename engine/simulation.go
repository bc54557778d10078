package engine

import (
	"errors"

	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/systems"
	"github.com/automoto/megaphone/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevels = errors.New("engine: no levels")

// Simulation owns the world built from the current level. A level change
// throws the whole world away and builds a new one from the registry.
type Simulation struct {
	levels []assets.Level
	index  int
	ecs    *ecs.ECS

	// Input of the previous step, kept across rebuilds
	prev components.InputSnapshot

	// OnLevelLoaded is called after every world build.
	OnLevelLoaded func(index int, level assets.Level)
}

// NewSimulation builds the world for levels[index]. An out of range index
// falls back to the first level.
func NewSimulation(levels []assets.Level, index int) (*Simulation, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	s := &Simulation{levels: levels}
	s.Load(index)
	return s, nil
}

// Load replaces the world with a fresh copy of levels[index]. Pause state
// and queued sounds survive the swap.
func (s *Simulation) Load(index int) {
	if index < 0 || index >= len(s.levels) {
		index = 0
	}

	var paused bool
	var pending []cfg.Tone
	if s.ecs != nil {
		paused = systems.IsPaused(s.ecs)
		pending = append(pending, systems.GetOrCreateAudio(s.ecs).PendingSFX...)
	}

	world := newWorld()
	factory.BuildLevel(world, s.levels, index)
	systems.SetPaused(world, paused)
	audio := systems.GetOrCreateAudio(world)
	audio.PendingSFX = append(audio.PendingSFX, pending...)

	s.ecs = world
	s.index = index

	if s.OnLevelLoaded != nil {
		s.OnLevelLoaded(index, s.levels[index])
	}
}

// newWorld creates an empty world with every system and renderer registered.
func newWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that run even when paused
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateLevelControls)
	e.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with the pause check
	e.AddSystem(systems.WithPauseCheck(systems.UpdateTimers))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMegaphone))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBoss))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateContacts))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePickups))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateProgression))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateStatus))

	// Draw order: sky, level, pickups, enemies, boss, player, then HUD
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawCollectibles)
	e.AddRenderer(cfg.Default, systems.DrawEnemies)
	e.AddRenderer(cfg.Default, systems.DrawBoss)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	e.AddRenderer(cfg.LayerHUD, systems.DrawPause)

	return e
}

// Step advances the world by dt seconds with the given input, then carries
// out any level change requested during the step.
func (s *Simulation) Step(dt float64, input components.InputSnapshot) {
	systems.ApplyFrame(s.ecs, dt)
	systems.ApplyInput(s.ecs, s.prev, input)
	s.prev = input

	s.ecs.Update()
	s.resolveRequest()
}

func (s *Simulation) resolveRequest() {
	switch systems.PendingLevelRequest(s.ecs) {
	case components.LevelRequestReset:
		s.Reset()
	case components.LevelRequestNext:
		s.NextLevel()
	case components.LevelRequestPrev:
		s.PrevLevel()
	}
}

// Reset rebuilds the current level.
func (s *Simulation) Reset() {
	s.Load(s.index)
}

// NextLevel builds the following level, wrapping to the first.
func (s *Simulation) NextLevel() {
	s.Load(assets.NextIndex(s.index, len(s.levels)))
}

// PrevLevel builds the preceding level, wrapping to the last.
func (s *Simulation) PrevLevel() {
	s.Load(assets.PrevIndex(s.index, len(s.levels)))
}

// TogglePause flips the pause flag and returns the new state.
func (s *Simulation) TogglePause() bool {
	return systems.TogglePause(s.ecs)
}

func (s *Simulation) Paused() bool {
	return systems.IsPaused(s.ecs)
}

func (s *Simulation) Draw(screen *ebiten.Image) {
	s.ecs.Draw(screen)
}

// ECS exposes the current world. It changes on every level load.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

func (s *Simulation) LevelIndex() int {
	return s.index
}

func (s *Simulation) Level() assets.Level {
	return s.levels[s.index]
}

func (s *Simulation) LevelCount() int {
	return len(s.levels)
}
