package systems

import (
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the wall time since the previous tick. The first
// tick of a scene has a delta of zero and long stalls are clamped.
func UpdateClock(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := clock.Now()
	if !clock.Started {
		clock.Started = true
		clock.Last = now
		clock.Delta = 0
		return
	}

	dt := now.Sub(clock.Last).Seconds()
	clock.Last = now
	if dt < 0 {
		dt = 0
	}
	if dt > cfg.Timing.MaxFrameDelta {
		dt = cfg.Timing.MaxFrameDelta
	}
	clock.Delta = dt
	clock.Elapsed += dt
}
