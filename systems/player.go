package systems

import (
	"math"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// UpdatePlayerIdle bobs the player in place in the menu and tutorial.
func UpdatePlayerIdle(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	data := components.Player.Get(player)
	obj := components.Object.Get(player)

	offset, _, _ := components.Tween.Get(player).Update(float32(deltaTime(e)))
	obj.Y = data.BaseY + float64(offset)
	obj.Update()
	data.Rotation = 0
}

// UpdatePlayer handles the flap input during Play.
func UpdatePlayer(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	if input.Handled {
		return
	}
	if primary, _ := readTaps(input); primary {
		flap(e, player)
	}
}

// flap sets the upward speed and tips the nose up.
func flap(e *ecs.ECS, player *donburi.Entry) {
	data := components.Player.Get(player)
	vel := components.Velocity.Get(player)
	obj := components.Object.Get(player)

	vel.Y = -cfg.Player.Impulse
	data.AngularVelocity = -degToRad(cfg.Player.AngularVelocity)
	data.LastFlapY = obj.Y
	PlaySFX(e, cfg.SoundFlap)
}

// UpdatePlayerPhysics integrates gravity and rotation. In Falling the
// player comes to rest on the ground.
func UpdatePlayerPhysics(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	data := components.Player.Get(player)
	if data.Grounded {
		return
	}
	vel := components.Velocity.Get(player)
	obj := components.Object.Get(player)
	dt := deltaTime(e)

	vel.Y += cfg.Physics.Gravity * dt
	if vel.Y > cfg.Physics.MaxFallSpeed {
		vel.Y = cfg.Physics.MaxFallSpeed
	}
	obj.Y += vel.Y * dt
	if obj.Y < 0 {
		obj.Y = 0
		if vel.Y < 0 {
			vel.Y = 0
		}
	}

	// Dropping below the last flap point tips the nose down
	if obj.Y > data.LastFlapY {
		data.AngularVelocity = degToRad(cfg.Player.AngularVelocity)
	}
	data.Rotation += data.AngularVelocity * dt
	data.Rotation = math.Max(degToRad(cfg.Player.MaxUpDegrees), math.Min(degToRad(cfg.Player.MaxDownDegrees), data.Rotation))

	if CurrentState(e) == cfg.StateFalling {
		ground := groundTop(e)
		if obj.Y+obj.H >= ground {
			obj.Y = ground - obj.H
			vel.Y = 0
			data.Grounded = true
			PlaySFX(e, cfg.SoundHitGround)
		}
	}

	obj.Update()
}
