package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// SpawnerData is the obstacle spawn timer. Rand is seeded by the scene so
// tests get a fixed sequence of gaps.
type SpawnerData struct {
	Running bool
	Timer   float64 // seconds until the next pair
	Spawned int
	Rand    *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
