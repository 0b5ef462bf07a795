package components

import (
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputPointer
	InputGamepad
)

// Tap is a click or touch press in logical screen coordinates
type Tap struct {
	X, Y float64
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the taps that started this frame.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	Taps            []Tap
	LastInputMethod InputMethod

	// Set when the state machine used this frame's tap for a transition,
	// so the same tap does not also flap.
	Handled bool
}

var Input = donburi.NewComponentType[InputData]()
