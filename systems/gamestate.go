package systems

import (
	"log"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/systems/factory"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameState runs the game flow. It reads the triggers raised since
// the last tick (taps, contacts, the ghost leaving, timers) and applies
// at most one transition per tick.
func UpdateGameState(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	gs := components.GameState.Get(entry)
	if gs.RestartRequested {
		return
	}
	input := components.Input.Get(entry)
	if !gs.Entered {
		gs.Entered = true
		// Keys still held from the press that started this scene are not
		// new presses.
		input.Previous = input.Current
		enterState(e, gs.Current)
	}
	gs.TimeInState += deltaTime(e)

	contacts := components.Contacts.Get(entry)
	primary, secondary := readTaps(input)

	switch gs.Current {
	case cfg.StateMainMenu:
		if primary {
			fire(e, gs, input, cfg.TriggerPrimaryTap)
		} else if secondary {
			input.Handled = true
			OpenRating(e)
		}
	case cfg.StateTutorial:
		if primary {
			fire(e, gs, input, cfg.TriggerPrimaryTap)
		} else if secondary {
			fire(e, gs, input, cfg.TriggerSecondaryTap)
		}
	case cfg.StatePlay:
		if contacts.Any() {
			fire(e, gs, input, cfg.TriggerContact)
		}
	case cfg.StateFalling:
		if ghostGone(e) {
			fire(e, gs, input, cfg.TriggerGhostGone)
		}
	case cfg.StateShowingScore:
		if gs.TimeInState >= cfg.Timing.ShowScoreHold {
			fire(e, gs, input, cfg.TriggerTimer)
		}
	case cfg.StateGameOver:
		if primary {
			fire(e, gs, input, cfg.TriggerPrimaryTap)
		} else if secondary {
			input.Handled = true
			RequestShare(e)
		}
	}
}

// fire applies the transition declared for trigger in the current state.
func fire(e *ecs.ECS, gs *components.GameStateData, input *components.InputData, trigger cfg.TriggerID) {
	t, ok := cfg.NextState(gs.Current, trigger)
	if !ok {
		return
	}
	if trigger == cfg.TriggerPrimaryTap || trigger == cfg.TriggerSecondaryTap {
		input.Handled = true
	}

	exitState(e, gs.Current)
	if t.NewScene {
		gs.RestartRequested = true
		gs.RestartState = t.To
		return
	}

	gs.Previous = gs.Current
	gs.Current = t.To
	gs.TimeInState = 0
	enterState(e, t.To)
}

// ChangeState forces a transition, rejecting any the flow table does not
// declare.
func ChangeState(e *ecs.ECS, to cfg.GameStateID) bool {
	entry, ok := gameEntry(e)
	if !ok {
		return false
	}
	gs := components.GameState.Get(entry)
	if !cfg.CanTransition(gs.Current, to) {
		log.Printf("Warning: Could not change state %s -> %s: not a declared transition", gs.Current, to)
		return false
	}
	for _, t := range cfg.Transitions {
		if t.From == gs.Current && t.To == to {
			fire(e, gs, components.Input.Get(entry), t.Trigger)
			return true
		}
	}
	return false
}

func enterState(e *ecs.ECS, state cfg.GameStateID) {
	switch state {
	case cfg.StateMainMenu:
		panel := factory.CreatePanel(e, components.PanelMenu, state, 0)
		components.Panel.Get(panel).Best = bestScore(e)
	case cfg.StateTutorial:
		factory.CreatePanel(e, components.PanelTutorial, state, 0)
	case cfg.StatePlay:
		startSpawner(e)
		if player, ok := tags.Player.First(e.World); ok {
			flap(e, player)
		}
	case cfg.StateFalling:
		enterFalling(e)
	case cfg.StateShowingScore:
		enterShowingScore(e)
	case cfg.StateGameOver:
		components.Panel.Each(e.World, func(entry *donburi.Entry) {
			panel := components.Panel.Get(entry)
			if panel.Kind == components.PanelScorecard && !panel.Closing {
				panel.Owner = cfg.StateGameOver
				panel.ShowButtons = true
				panel.Dirty = true
			}
		})
	}
}

func exitState(e *ecs.ECS, state cfg.GameStateID) {
	switch state {
	case cfg.StateMainMenu, cfg.StateTutorial, cfg.StateGameOver:
		closePanels(e, state)
	case cfg.StatePlay:
		stopSpawner(e)
		freezeObstacles(e)
	}
}

func closePanels(e *ecs.ECS, owner cfg.GameStateID) {
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		panel := components.Panel.Get(entry)
		if panel.Owner == owner {
			factory.ClosePanel(panel)
		}
	})
}

func enterFalling(e *ecs.ECS) {
	entry, _ := gameEntry(e)
	contacts := components.Contacts.Get(entry)

	PlaySFX(e, cfg.SoundWhack)
	if contacts.HitObstacle {
		PlaySFX(e, cfg.SoundFalling)
	}
	contacts.Clear()

	TriggerScreenShake(e, cfg.Effects.ShakeIntensity, cfg.Effects.ShakeDuration)
	factory.SpawnOverlay(e, components.OverlayFlash, cfg.Effects.FlashDuration)

	if player, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(player)
		factory.CreateGhost(e, obj.X, obj.Y, obj.W, obj.H)
	}
}

func enterShowingScore(e *ecs.ECS) {
	entry, _ := gameEntry(e)
	score := components.Score.Get(entry)
	RecordBestScore(e)

	panel := factory.CreatePanel(e, components.PanelScorecard, cfg.StateShowingScore, cfg.Timing.ScoreCardDelay)
	data := components.Panel.Get(panel)
	data.Score = score.Current
	data.Best = score.Best
	data.NewBest = score.NewBest

	PlaySFX(e, cfg.SoundPop)
}

// ghostGone reports whether the ghost has floated entirely above the top
// of the screen, or expired.
func ghostGone(e *ecs.ECS) bool {
	ghost, ok := tags.Ghost.First(e.World)
	if !ok {
		return true
	}
	obj := components.Object.Get(ghost)
	return obj.Y+obj.H < 0
}
