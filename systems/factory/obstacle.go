package factory

import (
	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ObstacleLifetime is the time a pair spawned just off the right edge
// needs to scroll fully past the left edge.
func ObstacleLifetime(screenWidth float64) float64 {
	return (screenWidth + cfg.Obstacle.Width) / cfg.Scroll.ForegroundSpeed
}

// CreateObstaclePair spawns a bottom obstacle whose top edge is at
// bottomTop and a top obstacle whose bottom edge sits gap above it.
func CreateObstaclePair(ecs *ecs.ECS, x, bottomTop, gap float64) (top, bottom *donburi.Entry) {
	spaceEntry, _ := components.Space.First(ecs.World)
	screenW := float64(cfg.C.Width)

	bottom = createObstacle(ecs, x, bottomTop, true, screenW)
	top = createObstacle(ecs, x, bottomTop-gap-cfg.Obstacle.Height, false, screenW)

	if spaceEntry != nil {
		space := components.Space.Get(spaceEntry)
		space.Add(components.Object.Get(bottom).Object, components.Object.Get(top).Object)
	}
	return top, bottom
}

func createObstacle(ecs *ecs.ECS, x, y float64, isBottom bool, screenW float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Obstacle.Width, cfg.Obstacle.Height, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})

	components.Obstacle.SetValue(obstacle, components.ObstacleData{Bottom: isBottom})
	components.Velocity.SetValue(obstacle, components.VelocityData{X: -cfg.Scroll.ForegroundSpeed})
	components.Lifetime.SetValue(obstacle, components.LifetimeData{Remaining: ObstacleLifetime(screenW)})
	components.Sprite.SetValue(obstacle, components.SpriteData{
		Shape: components.ShapePipe,
		Color: cfg.Palette.Pipe,
		Alpha: 1,
		FlipY: !isBottom,
		Z:     cfg.ZObstacles,
	})
	return obstacle
}
