// Package leveldata parses the world layout from a Tiled TMX map.
// It has no dependencies on ebitengine, donburi, or resolv, only plain data.
package leveldata

// World holds the layout of the play field.
type World struct {
	Width       int
	Height      int
	Sky         Rect
	Ground      Rect
	PlayerSpawn Point
	Layers      []ScrollLayer
}

// Rect is an axis-aligned rectangle in screen pixels, y down.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// ScrollLayer describes one horizontally tiled, scrolling strip.
type ScrollLayer struct {
	Name  string // "midground" or "foreground"
	Rect  Rect   // area covered by a single tile
	Tiles int    // tiles laid side by side for wrap-around
}

// PlayableHeight is the distance from the top of the screen to the ground.
func (w *World) PlayableHeight() float64 {
	return w.Ground.Y
}

// Layer returns the scroll layer with the given name.
func (w *World) Layer(name string) (ScrollLayer, bool) {
	for _, l := range w.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return ScrollLayer{}, false
}
