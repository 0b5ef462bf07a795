package systems

import (
	"github.com/automoto/flappy-gopher/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects fades full-screen overlays and removes finished ones.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(deltaTime(e))
	var toDestroy []*donburi.Entry

	components.Overlay.Each(e.World, func(entry *donburi.Entry) {
		overlay := components.Overlay.Get(entry)
		alpha, done := overlay.Tween.Update(dt)
		overlay.Alpha = float64(alpha)
		if done {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		entry.Remove()
	}
}
