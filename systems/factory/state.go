package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOptions configures the singleton game entity of a scene
type GameOptions struct {
	Start    cfg.GameStateID
	Best     int
	Seed     int64
	Now      func() time.Time
	Services components.ServicesData
}

// CreateGame spawns the entity holding game state, clock, input, score,
// spawner, contact flags and services.
func CreateGame(ecs *ecs.ECS, opts GameOptions) *donburi.Entry {
	game := archetypes.GameState.Spawn(ecs)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	components.GameState.SetValue(game, components.GameStateData{
		Current:  opts.Start,
		Previous: opts.Start,
	})
	components.Clock.SetValue(game, components.ClockData{Now: now})
	components.Input.SetValue(game, components.InputData{})
	components.Score.SetValue(game, components.ScoreData{Best: opts.Best})
	components.Spawner.SetValue(game, components.SpawnerData{
		Rand: rand.New(rand.NewSource(opts.Seed)),
	})
	components.Contacts.SetValue(game, components.ContactsData{})
	components.Services.SetValue(game, opts.Services)

	return game
}
