package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionInvisible
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionToggleProbe
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds the global (menu/pause) mappings and gamepad bindings
// shared by both players.
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// ControlSchemeID selects the keyboard half a player uses.
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
)

// Input is the global input configuration
var Input InputConfig

// ControlSchemeBindings maps each keyboard scheme to its per-player keys.
// When both directions are held the right-hand key wins.
var ControlSchemeBindings [2]map[ActionID][]ebiten.Key

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionDash: {
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionInvisible: {
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyBackspace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionToggleProbe: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}

	ControlSchemeBindings = [2]map[ActionID][]ebiten.Key{
		ControlSchemeWASD: {
			ActionMoveLeft:  {ebiten.KeyA},
			ActionMoveRight: {ebiten.KeyD},
			ActionJump:      {ebiten.KeyW},
			ActionDash:      {ebiten.KeyShiftLeft},
			ActionInvisible: {ebiten.KeyE},
		},
		ControlSchemeArrows: {
			ActionMoveLeft:  {ebiten.KeyArrowLeft},
			ActionMoveRight: {ebiten.KeyArrowRight},
			ActionJump:      {ebiten.KeyArrowUp},
			ActionDash:      {ebiten.KeyShiftRight},
			ActionInvisible: {ebiten.KeySlash},
		},
	}
}

// SchemeLabel names the keys of a scheme for menus and the HUD.
func SchemeLabel(id ControlSchemeID) string {
	switch id {
	case ControlSchemeArrows:
		return "Arrows / Up / RShift / Slash"
	}
	return "A D / W / LShift / E"
}
