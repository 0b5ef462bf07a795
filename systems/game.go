package systems

import (
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func gameEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.GameState.First(e.World)
}

// CurrentState returns the state of the scene's game flow.
func CurrentState(e *ecs.ECS) cfg.GameStateID {
	entry, ok := gameEntry(e)
	if !ok {
		return cfg.StateMainMenu
	}
	return components.GameState.Get(entry).Current
}

// PendingRestart reports whether the game asked for a fresh scene, and the
// state that scene should start in.
func PendingRestart(e *ecs.ECS) (cfg.GameStateID, bool) {
	entry, ok := gameEntry(e)
	if !ok {
		return 0, false
	}
	gs := components.GameState.Get(entry)
	return gs.RestartState, gs.RestartRequested
}

// deltaTime is the clamped duration of the current tick in seconds.
func deltaTime(e *ecs.ECS) float64 {
	entry, ok := gameEntry(e)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}

func levelWorld(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// groundTop is the y of the ground surface.
func groundTop(e *ecs.ECS) float64 {
	if level := levelWorld(e); level != nil && level.World != nil {
		return level.World.Ground.Y
	}
	return float64(cfg.C.Height)
}

// InState wraps a system so it only runs in the given states.
func InState(system ecs.System, states ...cfg.GameStateID) ecs.System {
	return func(e *ecs.ECS) {
		current := CurrentState(e)
		for _, s := range states {
			if s == current {
				system(e)
				return
			}
		}
	}
}

// QuitRequested reports whether the quit action was pressed this tick.
func QuitRequested(e *ecs.ECS) bool {
	entry, ok := gameEntry(e)
	if !ok {
		return false
	}
	return JustPressed(components.Input.Get(entry), cfg.ActionQuit)
}
