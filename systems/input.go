package systems

import (
	"github.com/defvs/touhosu/archetypes"
	"github.com/defvs/touhosu/components"
	cfg "github.com/defvs/touhosu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayerInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Swap()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right, up, down := getAnalogStickState(gamepadIDs)
	if left {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
	}
	if up {
		input.Current[cfg.ActionMoveUp] = true
	}
	if down {
		input.Current[cfg.ActionMoveDown] = true
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}

	return
}

// UpdatePlayerInput turns input edges into player presses and releases. It
// runs while paused too, so a key released during the pause is not left held.
func UpdatePlayerInput(ecs *ecs.ECS) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	sim := components.Player.Get(entry).Sim
	input := getOrCreateInput(ecs)

	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		state := input.Action(id)
		if state.JustPressed {
			sim.Press(id)
		}
		if state.JustReleased {
			sim.Release(id)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs.World)
	}
	return components.Input.Get(entry)
}

// LatchInput treats actions as already held, so keys still down from the
// previous scene do not trigger a press on the first frame. With no actions
// given every action is latched.
func LatchInput(ecs *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(ecs)
	if len(actions) == 0 {
		for i := range input.Current {
			input.Current[i] = true
		}
		return
	}
	for _, id := range actions {
		input.Current[id] = true
	}
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
