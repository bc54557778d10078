package components

import "github.com/yohamta/donburi"

// FrameData is the clock singleton written before every simulation step.
type FrameData struct {
	Dt      float64 // seconds for this step, already clamped
	Step    int
	Elapsed float64 // simulated seconds since the world was built
}

var Frame = donburi.NewComponentType[FrameData]()
