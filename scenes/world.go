package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/engine"
	"github.com/automoto/megaphone/systems"
	"github.com/automoto/megaphone/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldOptions configures a PlatformerScene.
type WorldOptions struct {
	Levels     []assets.Level
	LevelIndex int

	// TuningPath is reloaded whenever it changes on disk when Watch is set.
	TuningPath string
	Watch      bool

	Clock engine.Clock // nil uses the wall clock
}

// PlatformerScene runs the game: it polls input once per frame, feeds it to
// the fixed-step simulation and plays whatever sounds the steps queued.
type PlatformerScene struct {
	sceneChanger SceneChanger
	opts         WorldOptions

	sim      *engine.Simulation
	driver   *engine.Driver
	controls *ui.ControlBar
	watcher  *cfg.TuningWatcher

	prevInput components.InputSnapshot
	once      sync.Once
}

func NewPlatformerScene(sc SceneChanger, opts WorldOptions) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, opts: opts}
}

func (ps *PlatformerScene) configure() {
	sim, err := engine.NewSimulation(ps.opts.Levels, ps.opts.LevelIndex)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}
	sim.OnLevelLoaded = func(index int, level assets.Level) {
		log.Printf("Loaded level %d: %s", index+1, level.Name)
	}
	ps.sim = sim
	ps.driver = engine.NewDriver(ps.opts.Clock)

	controls, err := ui.NewControlBar(ps.TogglePause, ps.NextLevel, ps.PrevLevel)
	if err != nil {
		log.Printf("Warning: Control bar disabled: %v", err)
	} else {
		ps.controls = controls
	}

	if ps.opts.Watch && ps.opts.TuningPath != "" {
		w, err := cfg.NewTuningWatcher(ps.opts.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", ps.opts.TuningPath, err)
		} else {
			ps.watcher = w
		}
	}

	systems.InitAudio()
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	input := systems.PollInput()
	if systems.SnapshotAction(ps.prevInput, input, cfg.ActionMute).JustPressed {
		systems.ToggleMute()
	}
	ps.prevInput = input

	ps.reloadTuning()

	if ps.controls != nil {
		ps.controls.Update()
	}

	ps.driver.Tick(func(dt float64) {
		ps.sim.Step(dt, input)
	})

	if ps.controls != nil {
		ps.controls.SetPaused(ps.sim.Paused())
	}
	systems.FlushAudio(ps.sim.ECS())
}

func (ps *PlatformerScene) reloadTuning() {
	if ps.watcher == nil {
		return
	}
	select {
	case err := <-ps.watcher.Errors:
		log.Printf("Warning: Tuning watcher: %v", err)
	default:
	}
	if !ps.watcher.Changed() {
		return
	}
	if err := cfg.LoadTuningFile(ps.watcher.Path()); err != nil {
		log.Printf("Warning: Could not reload tuning: %v", err)
		return
	}
	log.Printf("Reloaded tuning from %s", ps.watcher.Path())
	ps.sim.Reset()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.sim == nil {
		return
	}
	ps.sim.Draw(screen)
	if ps.controls != nil {
		ps.controls.Draw(screen)
	}
}

// Reset rebuilds the current level.
func (ps *PlatformerScene) Reset() {
	ps.sim.Reset()
}

// NextLevel moves to the following level, wrapping around.
func (ps *PlatformerScene) NextLevel() {
	ps.sim.NextLevel()
}

// PrevLevel moves to the preceding level, wrapping around.
func (ps *PlatformerScene) PrevLevel() {
	ps.sim.PrevLevel()
}

// TogglePause pauses or resumes the simulation and returns the new state.
func (ps *PlatformerScene) TogglePause() bool {
	return ps.sim.TogglePause()
}

// Close releases the tuning watcher.
func (ps *PlatformerScene) Close() error {
	if ps.watcher != nil {
		return ps.watcher.Close()
	}
	return nil
}
