package components

import (
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/ebitenui/ebitenui"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PanelKind identifies the UI shown by a state
type PanelKind int

const (
	PanelMenu PanelKind = iota
	PanelTutorial
	PanelScorecard
)

// PanelData is a state-owned UI node. It fades in when its state is
// entered and is removed once it has faded out after the state exits.
type PanelData struct {
	Kind    PanelKind
	Owner   cfg.GameStateID
	Alpha   float64
	OffsetY float64 // slide offset applied when drawing
	Closing bool

	FadeTween  *gween.Tween // alpha, 0..1
	SlideTween *gween.Tween // OffsetY, towards 0
	Delay      float64      // seconds before the tweens start

	// Content, rebuilt into UI when Dirty is set
	Score       int
	Best        int
	NewBest     bool
	ShowButtons bool
	Dirty       bool

	UI *ebitenui.UI // built lazily by the renderer
}

var Panel = donburi.NewComponentType[PanelData]()
