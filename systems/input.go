package systems

import (
	"strings"

	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls the global (pause and menu) actions from every device.
// Must run BEFORE UpdatePause and the menus.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Sticks only drive menu navigation here; movement is per player.
	for _, gpID := range gamepadIDs {
		_, _, up, down, ok := readStick(gpID)
		if !ok {
			continue
		}
		if up {
			input.Current[cfg.ActionMenuUp] = true
		}
		if down {
			input.Current[cfg.ActionMenuDown] = true
		}
		if up || down {
			gamepadUsed = true
			activeGamepadID = gpID
		}
	}

	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// readStick reads one gamepad's left stick against the deadzone.
func readStick(gpID ebiten.GamepadID) (left, right, up, down, ok bool) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return false, false, false, false, false
	}
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	return horizontal < -deadzone, horizontal > deadzone, vertical < -deadzone, vertical > deadzone, true
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateMultiPlayerInput polls input for all player entities with PlayerInputData.
// Runs even while paused so a held key does not read as a fresh press on
// resume.
func UpdateMultiPlayerInput(ecs *ecs.ECS) {
	pads := ebiten.AppendGamepadIDs(nil)
	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		input := components.PlayerInput.Get(entry)
		bindGamepad(input, pads)
		updatePlayerInputData(input)
	})
}

// bindGamepad gives player i the i-th connected standard gamepad and drops
// the binding when that pad goes away. Keyboard schemes keep working either
// way.
func bindGamepad(input *components.PlayerInputData, pads []ebiten.GamepadID) {
	var standard []ebiten.GamepadID
	for _, id := range pads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			standard = append(standard, id)
		}
	}
	if input.PlayerIndex < 0 || input.PlayerIndex >= len(standard) {
		input.BoundGamepadID = nil
		return
	}
	id := standard[input.PlayerIndex]
	if input.BoundGamepadID == nil || *input.BoundGamepadID != id {
		input.BoundGamepadID = &id
	}
}

func updatePlayerInputData(input *components.PlayerInputData) {
	input.PreviousInput = input.CurrentInput
	input.CurrentInput = [cfg.ActionCount]bool{}

	if input.BoundGamepadID != nil {
		pollGamepadForPlayer(input, *input.BoundGamepadID)
	}

	if input.ControlScheme >= 0 && int(input.ControlScheme) < len(cfg.ControlSchemeBindings) {
		pollControlSchemeForPlayer(input, input.ControlScheme)
	}
}

// pollGamepadForPlayer reads gameplay actions from one gamepad.
func pollGamepadForPlayer(input *components.PlayerInputData, gpID ebiten.GamepadID) {
	left, right, _, _, ok := readStick(gpID)
	if !ok {
		return
	}

	for _, actionID := range gameplayActions {
		for _, btn := range cfg.Input.Bindings[actionID].StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				input.CurrentInput[actionID] = true
				input.InputMethod = getControllerType(gpID)
			}
		}
	}
	if left {
		input.CurrentInput[cfg.ActionMoveLeft] = true
		input.InputMethod = getControllerType(gpID)
	}
	if right {
		input.CurrentInput[cfg.ActionMoveRight] = true
		input.InputMethod = getControllerType(gpID)
	}
}

var gameplayActions = []cfg.ActionID{
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
	cfg.ActionJump,
	cfg.ActionDash,
	cfg.ActionInvisible,
}

// pollControlSchemeForPlayer reads input from a control scheme into PlayerInputData.
func pollControlSchemeForPlayer(input *components.PlayerInputData, scheme cfg.ControlSchemeID) {
	keyPressed := false

	for actionID, keys := range cfg.ControlSchemeBindings[scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.CurrentInput[actionID] = true
				keyPressed = true
			}
		}
	}

	if keyPressed {
		input.InputMethod = components.InputKeyboard
	}
}

// GetPlayerAction returns the full ActionState for an action ID from PlayerInputData.
func GetPlayerAction(input *components.PlayerInputData, id cfg.ActionID) components.ActionState {
	curr := input.CurrentInput[id]
	prev := input.PreviousInput[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
