package factory

import (
	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player

	components.Player.SetValue(player, components.PlayerData{
		LastFlapY: obj.Y,
		BaseY:     obj.Y,
	})
	components.Velocity.SetValue(player, components.VelocityData{})
	components.Sprite.SetValue(player, components.SpriteData{
		Shape: components.ShapeBird,
		Color: cfg.Palette.Bird,
		Alpha: 1,
		Z:     cfg.ZPlayer,
	})

	// Idle bob used in the menu and tutorial
	amp := float32(cfg.Player.BobAmplitude)
	dur := float32(cfg.Player.BobDuration)
	bob := gween.NewSequence(
		gween.New(-amp, amp, dur, ease.InOutSine),
		gween.New(amp, -amp, dur, ease.InOutSine),
	)
	bob.SetLoop(-1)
	components.Tween.Set(player, bob)

	return player
}
