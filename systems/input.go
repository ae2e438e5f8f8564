package systems

import (
	"strings"

	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input, updates the action buffers and builds the
// steering vector. Must run before UpdateSkaters.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
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

	steering := digitalSteering(input)
	if stick, gpID, ok := analogSteering(gamepadIDs); ok {
		steering = stick
		gamepadUsed = true
		activeGamepadID = gpID
	}
	input.Steering = steering

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// digitalSteering turns the push, brake and carve actions into a stick.
func digitalSteering(input *components.InputData) mgl64.Vec2 {
	var x, y float64
	if input.Current[cfg.ActionPush] {
		y++
	}
	if input.Current[cfg.ActionBrake] {
		y--
	}
	if input.Current[cfg.ActionCarveRight] {
		x++
	}
	if input.Current[cfg.ActionCarveLeft] {
		x--
	}
	x, y = gamemath.ClampLength(x, y, 1)
	return mgl64.Vec2{x, y}
}

// analogSteering reads the left stick of the first gamepad outside the
// deadzone. Stick right pushes, stick down carves right.
func analogSteering(gamepads []ebiten.GamepadID) (mgl64.Vec2, ebiten.GamepadID, bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal*horizontal+vertical*vertical < deadzone*deadzone {
			continue
		}
		x, y := gamemath.ClampLength(vertical, horizontal, 1)
		return mgl64.Vec2{x, y}, gpID, true
	}
	return mgl64.Vec2{}, 0, false
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	for _, ps := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, ps) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
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
