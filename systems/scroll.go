package systems

import (
	"github.com/automoto/flappy-gopher/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll moves every tile left and wraps tiles that left the screen
// to the back of their layer.
func UpdateScroll(e *ecs.ECS) {
	dt := deltaTime(e)
	components.Scroll.Each(e.World, func(entry *donburi.Entry) {
		scroll := components.Scroll.Get(entry)
		obj := components.Object.Get(entry)

		obj.X -= scroll.Speed * dt
		if obj.X+scroll.Width <= 0 {
			obj.X += scroll.Width * float64(scroll.Count)
		}
	})
}
