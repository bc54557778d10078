package components

import (
	"github.com/automoto/megaphone/assets"
	"github.com/yohamta/donburi"
)

// LevelRequest is a level change asked for by the simulation and carried out
// by the scene between steps.
type LevelRequest int

const (
	LevelRequestNone LevelRequest = iota
	LevelRequestReset
	LevelRequestNext
	LevelRequestPrev
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	Request      LevelRequest
}

var Level = donburi.NewComponentType[LevelData]()
