package systems

import (
	"log"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScore awards a point for each bottom obstacle whose trailing edge
// has passed the player's centre. Passed obstacles never score again.
func UpdateScore(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	playerObj := components.Object.Get(player)
	centreX := playerObj.X + playerObj.W/2

	components.Obstacle.Each(e.World, func(o *donburi.Entry) {
		obstacle := components.Obstacle.Get(o)
		if !obstacle.Bottom || obstacle.Passed {
			return
		}
		obj := components.Object.Get(o)
		if obj.X+obj.W < centreX {
			obstacle.Passed = true
			score.Current++
			PlaySFX(e, cfg.SoundCoin)
		}
	})
}

// RecordBestScore stores the run's score as the best when it is strictly
// higher. Nothing is written otherwise.
func RecordBestScore(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	if score.Current <= score.Best {
		return
	}

	score.Best = score.Current
	score.NewBest = true

	services := components.Services.Get(entry)
	if services.Scores == nil {
		return
	}
	if err := services.Scores.SaveBestScore(score.Best); err != nil {
		log.Printf("Warning: Could not save best score: %v", err)
	}
}

func bestScore(e *ecs.ECS) int {
	entry, ok := gameEntry(e)
	if !ok {
		return 0
	}
	return components.Score.Get(entry).Best
}
