package components

import "github.com/yohamta/donburi"

// ScrollData makes a tile move left and wrap around. Tiles of one layer
// share Speed, Width and Count.
type ScrollData struct {
	Layer string
	Speed float64 // px/s
	Width float64 // width of a single tile
	Count int     // tiles in the layer
	Index int     // position of this tile in the layer, for drawing variety
}

var Scroll = donburi.NewComponentType[ScrollData]()
