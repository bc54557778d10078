package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// PollInput reads the keyboard and every standard-layout gamepad into a
// snapshot. It is the only place raw devices are read; the simulation only
// ever sees the returned value.
func PollInput() components.InputSnapshot {
	var snap components.InputSnapshot

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up := getAnalogStickState(gamepadIDs)
	if left {
		snap[cfg.ActionMoveLeft] = true
	}
	if right {
		snap[cfg.ActionMoveRight] = true
	}
	if up {
		snap[cfg.ActionJump] = true
	}

	return snap
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
		if vertical < -deadzone {
			up = true
		}
	}

	return
}

// ApplyInput stores the snapshots for the coming step in the Input singleton.
// prev is passed in rather than taken from the world so a freshly built world
// does not see held keys as just pressed.
func ApplyInput(ecs *ecs.ECS, prev, cur components.InputSnapshot) {
	input := getOrCreateInput(ecs)
	input.Previous = prev
	input.Current = cur
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous step.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// SnapshotAction is GetAction for a pair of raw snapshots.
func SnapshotAction(prev, cur components.InputSnapshot, id cfg.ActionID) components.ActionState {
	return GetAction(&components.InputData{Previous: prev, Current: cur}, id)
}
