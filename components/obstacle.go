package components

import "github.com/yohamta/donburi"

// ObstacleData marks one half of an obstacle pair. Only the bottom half
// scores, once, when the player passes its trailing edge.
type ObstacleData struct {
	Bottom bool
	Passed bool
}

var Obstacle = donburi.NewComponentType[ObstacleData]()

// LifetimeData removes an entity when Remaining reaches zero
type LifetimeData struct {
	Remaining float64 // seconds
}

var Lifetime = donburi.NewComponentType[LifetimeData]()
