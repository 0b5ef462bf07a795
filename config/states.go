package config

// GameStateID identifies a state of the game flow
type GameStateID int

const (
	StateMainMenu GameStateID = iota
	StateTutorial
	StatePlay
	StateFalling
	StateShowingScore
	StateGameOver
	StateCount // Must be last
)

var stateNames = [StateCount]string{
	StateMainMenu:     "MainMenu",
	StateTutorial:     "Tutorial",
	StatePlay:         "Play",
	StateFalling:      "Falling",
	StateShowingScore: "ShowingScore",
	StateGameOver:     "GameOver",
}

func (s GameStateID) String() string {
	if s < 0 || s >= StateCount {
		return "Unknown"
	}
	return stateNames[s]
}

// TriggerID names what caused a transition
type TriggerID int

const (
	TriggerPrimaryTap   TriggerID = iota // left half of the screen, or the flap key
	TriggerSecondaryTap                  // right half of the screen, or the rate/share key
	TriggerContact                       // obstacle or ground contact
	TriggerGhostGone                     // ghost floated above the top edge
	TriggerTimer                         // scorecard animation finished
)

// Transition is one row of the game flow table. NewScene means the target
// state is entered by a fresh GameScene rather than inside the current one.
type Transition struct {
	From     GameStateID
	Trigger  TriggerID
	To       GameStateID
	NewScene bool
}

// Transitions is the complete game flow. Secondary taps in MainMenu (rate)
// and GameOver (share) are side effects and never change state, so they
// have no row here.
//
//	MainMenu     --primary tap-->  Tutorial      (new scene)
//	Tutorial     --primary tap-->  Play
//	Tutorial     --secondary tap-> Play
//	Play         --contact------>  Falling
//	Falling      --ghost gone--->  ShowingScore
//	ShowingScore --timer-------->  GameOver
//	GameOver     --primary tap-->  MainMenu      (new scene)
var Transitions = []Transition{
	{From: StateMainMenu, Trigger: TriggerPrimaryTap, To: StateTutorial, NewScene: true},
	{From: StateTutorial, Trigger: TriggerPrimaryTap, To: StatePlay},
	{From: StateTutorial, Trigger: TriggerSecondaryTap, To: StatePlay},
	{From: StatePlay, Trigger: TriggerContact, To: StateFalling},
	{From: StateFalling, Trigger: TriggerGhostGone, To: StateShowingScore},
	{From: StateShowingScore, Trigger: TriggerTimer, To: StateGameOver},
	{From: StateGameOver, Trigger: TriggerPrimaryTap, To: StateMainMenu, NewScene: true},
}

// NextState looks up the transition for a trigger in the given state.
func NextState(from GameStateID, trigger TriggerID) (Transition, bool) {
	for _, t := range Transitions {
		if t.From == from && t.Trigger == trigger {
			return t, true
		}
	}
	return Transition{}, false
}

// CanTransition reports whether any trigger leads from one state to another.
func CanTransition(from, to GameStateID) bool {
	for _, t := range Transitions {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}
