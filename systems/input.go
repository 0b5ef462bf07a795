package systems

import (
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input into the Input component.
// Must run BEFORE UpdateGameState in the system order.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := gameEntry(ecs)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Taps = input.Taps[:0]
	input.Handled = false

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed, pointerUsed bool

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
				}
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		input.Taps = append(input.Taps, components.Tap{X: float64(x), Y: float64(y)})
		pointerUsed = true
	}
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		input.Taps = append(input.Taps, components.Tap{X: float64(x), Y: float64(y)})
		pointerUsed = true
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case pointerUsed:
		input.LastInputMethod = components.InputPointer
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// JustPressed reports whether an action went down this frame.
func JustPressed(input *components.InputData, action cfg.ActionID) bool {
	return input.Current[action] && !input.Previous[action]
}

// readTaps splits this frame's input into primary (left half, flap key)
// and secondary (right half, rate/share key) presses.
func readTaps(input *components.InputData) (primary, secondary bool) {
	half := float64(cfg.C.Width) / 2
	for _, tap := range input.Taps {
		if tap.X < half {
			primary = true
		} else {
			secondary = true
		}
	}
	if JustPressed(input, cfg.ActionFlap) {
		primary = true
	}
	if JustPressed(input, cfg.ActionSecondary) {
		secondary = true
	}
	return primary, secondary
}
