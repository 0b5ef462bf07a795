package systems

import (
	"github.com/automoto/flappy-gopher/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles moves obstacles by their velocity.
func UpdateObstacles(e *ecs.ECS) {
	dt := deltaTime(e)
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		vel := components.Velocity.Get(entry)
		obj := components.Object.Get(entry)
		obj.X += vel.X * dt
		obj.Y += vel.Y * dt
		obj.Update()
	})
}

// freezeObstacles stops every obstacle where it is. Frozen obstacles lose
// their lifetime so they stay on screen until the scene ends.
func freezeObstacles(e *ecs.ECS) {
	var frozen []*donburi.Entry
	components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		components.Velocity.SetValue(entry, components.VelocityData{})
		frozen = append(frozen, entry)
	})
	for _, entry := range frozen {
		if entry.HasComponent(components.Lifetime) {
			entry.RemoveComponent(components.Lifetime)
		}
	}
}

// UpdateLifetime counts down lifetimes and removes expired entities from
// the world and the collision space.
func UpdateLifetime(e *ecs.ECS) {
	dt := deltaTime(e)
	var toDestroy []*donburi.Entry

	components.Lifetime.Each(e.World, func(entry *donburi.Entry) {
		life := components.Lifetime.Get(entry)
		life.Remaining -= dt
		if life.Remaining <= 0 {
			toDestroy = append(toDestroy, entry)
		}
	})

	for _, entry := range toDestroy {
		if entry.HasComponent(components.Object) {
			obj := components.Object.Get(entry)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		entry.Remove()
	}
}
