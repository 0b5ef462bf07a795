package config

import "testing"

func TestNextState(t *testing.T) {
	cases := []struct {
		from     GameStateID
		trigger  TriggerID
		to       GameStateID
		newScene bool
		ok       bool
	}{
		{StateMainMenu, TriggerPrimaryTap, StateTutorial, true, true},
		{StateMainMenu, TriggerSecondaryTap, 0, false, false},
		{StateTutorial, TriggerPrimaryTap, StatePlay, false, true},
		{StateTutorial, TriggerSecondaryTap, StatePlay, false, true},
		{StatePlay, TriggerContact, StateFalling, false, true},
		{StatePlay, TriggerPrimaryTap, 0, false, false},
		{StateFalling, TriggerGhostGone, StateShowingScore, false, true},
		{StateFalling, TriggerPrimaryTap, 0, false, false},
		{StateShowingScore, TriggerTimer, StateGameOver, false, true},
		{StateShowingScore, TriggerPrimaryTap, 0, false, false},
		{StateGameOver, TriggerPrimaryTap, StateMainMenu, true, true},
		{StateGameOver, TriggerSecondaryTap, 0, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String(), func(t *testing.T) {
			tr, ok := NextState(tc.from, tc.trigger)
			if ok != tc.ok {
				t.Fatalf("trigger %d: ok = %v, want %v", tc.trigger, ok, tc.ok)
			}
			if !ok {
				return
			}
			if tr.To != tc.to || tr.NewScene != tc.newScene {
				t.Fatalf("trigger %d: got %s (new scene %v), want %s (new scene %v)",
					tc.trigger, tr.To, tr.NewScene, tc.to, tc.newScene)
			}
		})
	}
}

func TestCanTransitionRejectsUndeclared(t *testing.T) {
	declared := map[[2]GameStateID]bool{
		{StateMainMenu, StateTutorial}:     true,
		{StateTutorial, StatePlay}:         true,
		{StatePlay, StateFalling}:          true,
		{StateFalling, StateShowingScore}:  true,
		{StateShowingScore, StateGameOver}: true,
		{StateGameOver, StateMainMenu}:     true,
	}

	for from := StateMainMenu; from < StateCount; from++ {
		for to := StateMainMenu; to < StateCount; to++ {
			want := declared[[2]GameStateID{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestStateString(t *testing.T) {
	if StatePlay.String() != "Play" {
		t.Fatalf("got %q", StatePlay.String())
	}
	if GameStateID(99).String() != "Unknown" {
		t.Fatalf("got %q", GameStateID(99).String())
	}
}
