package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GhostData drives the float-up animation after the player dies
type GhostData struct {
	OriginX float64 // sway centre
	Age     float64 // seconds since spawn
	Pulse   *gween.Sequence
}

var Ghost = donburi.NewComponentType[GhostData]()
