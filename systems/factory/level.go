package factory

import (
	"image/color"

	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/shared/leveldata"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, world *leveldata.World) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{World: world})
	return level
}

// CreateBackground builds the static sky, the scrolling layers and the
// ground collision object.
func CreateBackground(ecs *ecs.ECS, world *leveldata.World, space *resolv.Space) {
	sky := archetypes.Background.Spawn(ecs)
	components.Object.SetValue(sky, components.ObjectData{
		Object: resolv.NewObject(world.Sky.X, world.Sky.Y, world.Sky.W, world.Sky.H),
	})
	components.Sprite.SetValue(sky, components.SpriteData{
		Shape: components.ShapeSky,
		Color: cfg.Palette.Sky,
		Alpha: 1,
		Z:     cfg.ZBackground,
	})

	for _, layer := range world.Layers {
		CreateScrollLayer(ecs, layer)
	}

	ground := archetypes.Ground.Spawn(ecs)
	obj := resolv.NewObject(world.Ground.X, world.Ground.Y, world.Ground.W, world.Ground.H, tags.ResolvGround)
	obj.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	space.Add(obj)
}

// CreateScrollLayer lays the tiles of one layer side by side, starting at
// the layer's rectangle.
func CreateScrollLayer(ecs *ecs.ECS, layer leveldata.ScrollLayer) []*donburi.Entry {
	speed, shape, z, col := scrollStyle(layer.Name)

	tiles := make([]*donburi.Entry, 0, layer.Tiles)
	for i := 0; i < layer.Tiles; i++ {
		tile := archetypes.ScrollTile.Spawn(ecs)
		x := layer.Rect.X + float64(i)*layer.Rect.W
		components.Object.SetValue(tile, components.ObjectData{
			Object: resolv.NewObject(x, layer.Rect.Y, layer.Rect.W, layer.Rect.H),
		})
		components.Sprite.SetValue(tile, components.SpriteData{
			Shape: shape,
			Color: col,
			Alpha: 1,
			Z:     z,
		})
		components.Scroll.SetValue(tile, components.ScrollData{
			Layer: layer.Name,
			Speed: speed,
			Width: layer.Rect.W,
			Count: layer.Tiles,
			Index: i,
		})
		tiles = append(tiles, tile)
	}
	return tiles
}

func scrollStyle(name string) (speed float64, shape components.ShapeKind, z int, col color.RGBA) {
	switch name {
	case "foreground":
		return cfg.Scroll.ForegroundSpeed, components.ShapeGround, cfg.ZForeground, cfg.Palette.Ground
	default:
		return cfg.Scroll.MidgroundSpeed, components.ShapeHills, cfg.ZMidground, cfg.Palette.Hills
	}
}
