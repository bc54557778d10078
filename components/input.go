package components

import (
	cfg "github.com/automoto/megaphone/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputSnapshot is the pressed state of every action at one instant.
type InputSnapshot [cfg.ActionCount]bool

// InputData stores the current and previous step's pressed state for all actions.
// It is written from the snapshot handed to each step and never polled by systems.
type InputData struct {
	Current  InputSnapshot
	Previous InputSnapshot
}

var Input = donburi.NewComponentType[InputData]()
