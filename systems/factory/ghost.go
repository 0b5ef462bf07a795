package factory

import (
	"math"

	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGhost spawns the ghost centred on the player, so it always starts
// at least partly on screen.
func CreateGhost(ecs *ecs.ECS, playerX, playerY, playerW, playerH float64) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(ecs)

	w, h := cfg.Ghost.Width, cfg.Ghost.Height
	x := playerX + playerW/2 - w/2
	y := playerY + playerH/2 - h/2
	components.Object.SetValue(ghost, components.ObjectData{Object: resolv.NewObject(x, y, w, h)})

	hi := float32(cfg.Ghost.StartAlpha)
	lo := float32(cfg.Ghost.PulseMinAlpha)
	dur := float32(cfg.Ghost.PulseDuration)
	pulse := gween.NewSequence(
		gween.New(hi, lo, dur, ease.InOutQuad),
		gween.New(lo, hi, dur, ease.InOutQuad),
	)
	pulse.SetLoop(-1)

	components.Ghost.SetValue(ghost, components.GhostData{OriginX: x, Pulse: pulse})
	components.Lifetime.SetValue(ghost, components.LifetimeData{Remaining: GhostLifetime(y, h)})
	components.Sprite.SetValue(ghost, components.SpriteData{
		Shape: components.ShapeGhost,
		Color: cfg.Palette.Ghost,
		Alpha: cfg.Ghost.StartAlpha,
		Z:     cfg.ZGhost,
	})
	return ghost
}

// GhostLifetime is the safety cap on a ghost spawned at y. It never ends
// before the ghost has risen clear of the top edge.
func GhostLifetime(y, h float64) float64 {
	if cfg.Ghost.RiseSpeed <= 0 {
		return cfg.Ghost.MaxLifetimeSec
	}
	rise := (y + h) / cfg.Ghost.RiseSpeed
	return math.Max(cfg.Ghost.MaxLifetimeSec, rise+1)
}
