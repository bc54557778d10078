package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/yohamta/donburi/ecs"
)

// ClampStep bounds a step length to (0, MaxElapsed]. A zero or negative
// elapsed time falls back to one nominal step.
func ClampStep(elapsed float64) float64 {
	if elapsed <= 0 {
		return cfg.Loop.StepSize
	}
	if elapsed > cfg.Loop.MaxElapsed {
		return cfg.Loop.MaxElapsed
	}
	return elapsed
}

// ApplyFrame records the length of the coming step. Systems read it through
// frameDt instead of assuming a tick rate.
func ApplyFrame(ecs *ecs.ECS, dt float64) {
	frame := getOrCreateFrame(ecs)
	frame.Dt = ClampStep(dt)
	frame.Step++
	frame.Elapsed += frame.Dt
}

func getOrCreateFrame(ecs *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Frame))
		components.Frame.SetValue(entry, components.FrameData{Dt: cfg.Loop.StepSize})
	}
	return components.Frame.Get(entry)
}

func frameDt(ecs *ecs.ECS) float64 {
	return getOrCreateFrame(ecs).Dt
}

// ElapsedTime returns the simulated seconds since the world was built.
func ElapsedTime(ecs *ecs.ECS) float64 {
	return getOrCreateFrame(ecs).Elapsed
}
