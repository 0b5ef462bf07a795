package systems

import (
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner fires the obstacle timer: first after FirstSpawnDelay,
// then every SpawnInterval.
func UpdateSpawner(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(entry)
	if !spawner.Running {
		return
	}

	spawner.Timer -= deltaTime(e)
	for spawner.Timer <= 0 {
		spawnObstaclePair(e, spawner)
		spawner.Timer += cfg.Spawner.SpawnInterval
	}
}

func spawnObstaclePair(e *ecs.ECS, spawner *components.SpawnerData) {
	bottomTop, gap := ObstacleGap(e, spawner.Rand.Float64())
	factory.CreateObstaclePair(e, float64(cfg.C.Width), bottomTop, gap)
	spawner.Spawned++
}

// ObstacleGap maps r in [0, 1) to the top edge of the bottom obstacle,
// inside the configured band above the ground, and returns the gap size.
func ObstacleGap(e *ecs.ECS, r float64) (bottomTop, gap float64) {
	ground := groundTop(e)
	playable := ground
	if level := levelWorld(e); level != nil && level.World != nil {
		playable = level.World.PlayableHeight()
	}

	lo, hi := cfg.Obstacle.BottomMinFraction, cfg.Obstacle.BottomMaxFraction
	f := lo + r*(hi-lo)
	return ground - f*playable, cfg.Player.Height * cfg.Obstacle.GapMultiplier
}

func startSpawner(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(entry)
	spawner.Running = true
	spawner.Timer = cfg.Spawner.FirstSpawnDelay
}

func stopSpawner(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	components.Spawner.Get(entry).Running = false
}
