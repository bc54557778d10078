package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionReset
	ActionPause
	ActionNextLevel
	ActionPrevLevel
	ActionDebug
	ActionMenuSelect
	ActionMute
	ActionCount // Must be last - used for array sizing
)

// InputBinding lists the keys and standard-layout gamepad buttons that
// trigger an action.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // 0..1, left stick
}

var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func bind(k []ebiten.Key, buttons ...ebiten.StandardGamepadButton) InputBinding {
	return InputBinding{Keys: k, StandardGamepadButtons: buttons}
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  bind(keys(ebiten.KeyArrowLeft, ebiten.KeyA), ebiten.StandardGamepadButtonLeftLeft),
			ActionMoveRight: bind(keys(ebiten.KeyArrowRight, ebiten.KeyD), ebiten.StandardGamepadButtonLeftRight),
			ActionJump:      bind(keys(ebiten.KeyArrowUp, ebiten.KeyW), ebiten.StandardGamepadButtonRightBottom),
			ActionAttack:    bind(keys(ebiten.KeySpace), ebiten.StandardGamepadButtonRightLeft),

			ActionReset:     bind(keys(ebiten.KeyR), ebiten.StandardGamepadButtonCenterLeft),
			ActionPause:     bind(keys(ebiten.KeyEscape, ebiten.KeyP), ebiten.StandardGamepadButtonCenterRight),
			ActionNextLevel: bind(keys(ebiten.KeyN), ebiten.StandardGamepadButtonFrontTopRight),
			ActionPrevLevel: bind(keys(ebiten.KeyB), ebiten.StandardGamepadButtonFrontTopLeft),

			ActionDebug:      bind(keys(ebiten.KeyF1)),
			ActionMute:       bind(keys(ebiten.KeyM)),
			ActionMenuSelect: bind(keys(ebiten.KeyEnter, ebiten.KeySpace), ebiten.StandardGamepadButtonRightBottom),
		},
	}
}
