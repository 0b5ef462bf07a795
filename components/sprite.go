package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ShapeKind selects how a sprite is drawn
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeSky
	ShapeHills
	ShapeGround
	ShapePipe
	ShapeBird
	ShapeGhost
)

// SpriteData describes a vector-drawn node. Position and size come from
// the entity's Object.
type SpriteData struct {
	Shape    ShapeKind
	Color    color.RGBA
	Alpha    float64 // 0.0 - 1.0
	Rotation float64 // radians
	FlipY    bool    // pipe opening faces down
	Z        int     // draw order, lower first
	Hidden   bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
