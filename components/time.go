package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData measures frame time. Now is swapped for a fake in tests.
type ClockData struct {
	Now     func() time.Time
	Last    time.Time
	Started bool
	Delta   float64 // seconds, clamped
	Elapsed float64 // seconds since the scene started
}

var Clock = donburi.NewComponentType[ClockData]()
