package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/fonts"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	camX, camY := cameraOffset(ecs)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvGround) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvObstacle) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}
			vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	if player, ok := tags.Player.First(ecs.World); ok {
		x, y, w, h := Hitbox(components.Object.Get(player).Object)
		vector.StrokeRect(screen, float32(x+camX), float32(y+camY), float32(w), float32(h), 1, color.RGBA{0, 255, 0, 255}, false)
	}

	entry, ok := gameEntry(ecs)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(entry)
	info := fmt.Sprintf("%s  FPS %.0f\nspawned %d  next %.2fs",
		CurrentState(ecs), ebiten.ActualFPS(), spawner.Spawned, spawner.Timer)
	text.Draw(screen, info, fonts.Debug.Get(), 4, 12, cfg.White)
}
