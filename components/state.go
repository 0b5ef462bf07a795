package components

import (
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/yohamta/donburi"
)

// GameStateData is the singleton game flow state
type GameStateData struct {
	Current     cfg.GameStateID
	Previous    cfg.GameStateID
	TimeInState float64 // seconds since the current state was entered
	Entered     bool    // enter recipe of Current has run

	// Set when a transition asks for a fresh scene. The scene switches
	// before the next tick and this world is discarded.
	RestartRequested bool
	RestartState     cfg.GameStateID
}

var GameState = donburi.NewComponentType[GameStateData]()
