package leveldata

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed world.tmx
var worldFS embed.FS

// DefaultWorldPath is the embedded world map.
const DefaultWorldPath = "world.tmx"

// LoadDefaultWorld parses the embedded world map.
func LoadDefaultWorld() (*World, error) {
	return LoadWorld(worldFS, DefaultWorldPath)
}

// LoadWorld parses a TMX file and returns the world layout. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadWorld(fsys fs.FS, tmxPath string) (*World, error) {
	worldMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	w := &World{
		Width:  worldMap.Width * worldMap.TileWidth,
		Height: worldMap.Height * worldMap.TileHeight,
	}

	var haveGround, haveSpawn bool
	for _, og := range worldMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				w.Ground = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				haveGround = true
			}
		case "Sky":
			for _, o := range og.Objects {
				w.Sky = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				w.PlayerSpawn = Point{X: o.X, Y: o.Y}
				haveSpawn = true
			}
		case "Scroll":
			for _, o := range og.Objects {
				tiles := o.Properties.GetInt("tiles")
				if tiles < 2 {
					tiles = 2
				}
				name := o.Properties.GetString("layer")
				if name == "" {
					name = o.Name
				}
				w.Layers = append(w.Layers, ScrollLayer{
					Name:  name,
					Rect:  Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Tiles: tiles,
				})
			}
		}
	}

	if !haveGround {
		return nil, errors.New("leveldata: world has no Ground object")
	}
	if !haveSpawn {
		return nil, errors.New("leveldata: world has no PlayerSpawn object")
	}
	if w.Ground.Y <= 0 || w.Ground.Y >= float64(w.Height) {
		return nil, fmt.Errorf("leveldata: ground top %.0f outside map height %d", w.Ground.Y, w.Height)
	}
	if w.Sky.W == 0 {
		w.Sky = Rect{W: float64(w.Width), H: w.Ground.Y}
	}

	// Back to front
	sort.SliceStable(w.Layers, func(i, j int) bool {
		return w.Layers[i].Rect.Y < w.Layers[j].Rect.Y
	})

	return w, nil
}
