package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds remaining
	Total     float64 // seconds at start, for decay
	Elapsed   float64 // seconds elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// OverlayKind picks what a full-screen overlay is used for
type OverlayKind int

const (
	OverlayFlash OverlayKind = iota // white flash on hit
	OverlayFade                     // fade in from black at scene start
)

// OverlayData is a full-screen colour whose alpha follows a tween.
// The entity is removed when the tween finishes.
type OverlayData struct {
	Kind  OverlayKind
	Alpha float64
	Tween *gween.Tween
}

var Overlay = donburi.NewComponentType[OverlayData]()
