package components

import (
	cfg "github.com/automoto/duodash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for the
// global actions (pause, menus). All devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData stores per-player input state from the player's bound
// device: a gamepad if one is bound, otherwise a keyboard scheme.
type PlayerInputData struct {
	PlayerIndex    int
	CurrentInput   [cfg.ActionCount]bool
	PreviousInput  [cfg.ActionCount]bool
	BoundGamepadID *ebiten.GamepadID
	ControlScheme  cfg.ControlSchemeID
	InputMethod    InputMethod
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
