package systems

import (
	"math"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGhost floats the ghost upward with a sway and a pulsing alpha.
func UpdateGhost(e *ecs.ECS) {
	dt := deltaTime(e)
	components.Ghost.Each(e.World, func(entry *donburi.Entry) {
		ghost := components.Ghost.Get(entry)
		obj := components.Object.Get(entry)
		sprite := components.Sprite.Get(entry)

		ghost.Age += dt
		obj.Y -= cfg.Ghost.RiseSpeed * dt
		obj.X = ghost.OriginX + math.Sin(2*math.Pi*cfg.Ghost.SwayFrequency*ghost.Age)*cfg.Ghost.SwayAmplitude

		if ghost.Pulse != nil {
			alpha, _, _ := ghost.Pulse.Update(float32(dt))
			sprite.Alpha = float64(alpha)
		}
	})
}
