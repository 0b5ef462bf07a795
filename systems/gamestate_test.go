package systems

import (
	"testing"
	"time"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/shared/leveldata"
	"github.com/automoto/flappy-gopher/systems/factory"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeScores struct {
	best  int
	saves []int
}

func (s *fakeScores) BestScore() int { return s.best }

func (s *fakeScores) SaveBestScore(score int) error {
	s.saves = append(s.saves, score)
	s.best = score
	return nil
}

type fakeLinks struct {
	opened []string
}

func (l *fakeLinks) OpenURL(url string) error {
	l.opened = append(l.opened, url)
	return nil
}

type fakeSharer struct {
	texts []string
}

func (s *fakeSharer) Share(text string, png []byte) error {
	s.texts = append(s.texts, text)
	return nil
}

type testGame struct {
	ecs    *ecs.ECS
	clock  *fakeClock
	scores *fakeScores
	links  *fakeLinks
	share  *fakeSharer
}

func newTestGame(t *testing.T, start cfg.GameStateID, best int) *testGame {
	t.Helper()

	world, err := leveldata.LoadDefaultWorld()
	if err != nil {
		t.Fatalf("LoadDefaultWorld: %v", err)
	}

	g := &testGame{
		ecs:    ecs.NewECS(donburi.NewWorld()),
		clock:  &fakeClock{now: time.Unix(1000, 0)},
		scores: &fakeScores{best: best},
		links:  &fakeLinks{},
		share:  &fakeSharer{},
	}

	factory.CreateLevel(g.ecs, world)
	space := components.Space.Get(factory.CreateSpace(g.ecs, world.Width, world.Height, 16, 16))
	factory.CreateCamera(g.ecs)
	factory.CreateBackground(g.ecs, world, space)
	factory.CreateGame(g.ecs, factory.GameOptions{
		Start: start,
		Best:  best,
		Seed:  1,
		Now:   g.clock.Now,
		Services: components.ServicesData{
			Scores: g.scores,
			Links:  g.links,
			Share:  g.share,
		},
	})
	player := factory.CreatePlayer(g.ecs, world.PlayerSpawn.X, world.PlayerSpawn.Y)
	space.Add(components.Object.Get(player).Object)

	return g
}

func (g *testGame) entry() *donburi.Entry {
	entry, _ := gameEntry(g.ecs)
	return entry
}

func (g *testGame) state() *components.GameStateData {
	return components.GameState.Get(g.entry())
}

func (g *testGame) input() *components.InputData {
	return components.Input.Get(g.entry())
}

func (g *testGame) setDelta(dt float64) {
	components.Clock.Get(g.entry()).Delta = dt
}

// tap injects a pointer press for the next tick.
func (g *testGame) tap(x float64) {
	in := g.input()
	in.Handled = false
	in.Taps = append(in.Taps[:0], components.Tap{X: x, Y: 100})
}

func (g *testGame) clearInput() {
	in := g.input()
	in.Taps = in.Taps[:0]
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func leftX() float64  { return float64(cfg.C.Width) / 4 }
func rightX() float64 { return float64(cfg.C.Width) * 3 / 4 }

func TestMainMenuPrimaryTapStartsNewSceneInTutorial(t *testing.T) {
	g := newTestGame(t, cfg.StateMainMenu, 0)

	g.tap(leftX())
	UpdateGameState(g.ecs)

	gs := g.state()
	if !gs.RestartRequested {
		t.Fatal("expected a new scene to be requested")
	}
	if gs.RestartState != cfg.StateTutorial {
		t.Fatalf("expected new scene in Tutorial, got %s", gs.RestartState)
	}
	if start, ok := PendingRestart(g.ecs); !ok || start != cfg.StateTutorial {
		t.Fatalf("PendingRestart = %s, %v", start, ok)
	}

	// Nothing else happens once a restart is pending
	g.tap(leftX())
	UpdateGameState(g.ecs)
	if gs.Current != cfg.StateMainMenu {
		t.Fatalf("state changed after restart request: %s", gs.Current)
	}
}

// press simulates one input poll with only action down.
func (g *testGame) press(action cfg.ActionID) {
	in := g.input()
	in.Taps = in.Taps[:0]
	in.Handled = false
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Current[action] = true
}

func TestFlapKeyHeldIntoNewSceneIsNotAPress(t *testing.T) {
	cases := []struct {
		start cfg.GameStateID
		check func(g *testGame) bool
	}{
		{
			start: cfg.StateMainMenu,
			check: func(g *testGame) bool { return g.state().RestartRequested },
		},
		{
			start: cfg.StateTutorial,
			check: func(g *testGame) bool { return g.state().Current == cfg.StatePlay },
		},
	}

	for _, tc := range cases {
		t.Run(tc.start.String(), func(t *testing.T) {
			g := newTestGame(t, tc.start, 0)

			// Still down from the press that started the scene
			g.input().Current[cfg.ActionFlap] = true
			UpdateGameState(g.ecs)
			g.press(cfg.ActionFlap)
			UpdateGameState(g.ecs)

			if tc.check(g) {
				t.Fatalf("held key acted as a press in %s", tc.start)
			}
			if g.state().Current != tc.start {
				t.Fatalf("expected to stay in %s, got %s", tc.start, g.state().Current)
			}

			g.clearInput()
			UpdateGameState(g.ecs)
			g.press(cfg.ActionFlap)
			UpdateGameState(g.ecs)

			if !tc.check(g) {
				t.Fatalf("a fresh press in %s did nothing", tc.start)
			}
		})
	}
}

func TestMainMenuSecondaryTapOpensRatingOnly(t *testing.T) {
	g := newTestGame(t, cfg.StateMainMenu, 0)

	g.tap(rightX())
	UpdateGameState(g.ecs)

	gs := g.state()
	if gs.Current != cfg.StateMainMenu || gs.RestartRequested {
		t.Fatalf("secondary tap changed state: current=%s restart=%v", gs.Current, gs.RestartRequested)
	}
	if len(g.links.opened) != 1 {
		t.Fatalf("expected rating link opened once, got %d", len(g.links.opened))
	}
	if g.links.opened[0] != cfg.Links.RateURL {
		t.Fatalf("opened %q, want %q", g.links.opened[0], cfg.Links.RateURL)
	}

	// A tick without input opens nothing more
	g.clearInput()
	UpdateGameState(g.ecs)
	if len(g.links.opened) != 1 {
		t.Fatalf("expected no further opens, got %d", len(g.links.opened))
	}
}

func TestTutorialTapEntersPlay(t *testing.T) {
	cases := []struct {
		name string
		x    float64
	}{
		{name: "left half", x: leftX()},
		{name: "right half", x: rightX()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, cfg.StateTutorial, 0)
			UpdateGameState(g.ecs)
			if CountPanels(g.ecs, components.PanelTutorial) != 1 {
				t.Fatal("expected the tutorial panel on entry")
			}

			g.tap(tc.x)
			UpdateGameState(g.ecs)

			if got := g.state().Current; got != cfg.StatePlay {
				t.Fatalf("expected Play, got %s", got)
			}
			if CountPanels(g.ecs, components.PanelTutorial) != 0 {
				t.Fatal("tutorial panel should be closing")
			}
			if !components.Spawner.Get(g.entry()).Running {
				t.Fatal("spawner should run in Play")
			}

			player, _ := tags.Player.First(g.ecs.World)
			vel := components.Velocity.Get(player)
			if vel.Y != -cfg.Player.Impulse {
				t.Fatalf("entering Play should flap, vy=%v", vel.Y)
			}

			// The same tap must not flap a second time
			vel.Y = 0
			UpdatePlayer(g.ecs)
			if vel.Y != 0 {
				t.Fatalf("tap consumed by the transition flapped again, vy=%v", vel.Y)
			}
		})
	}
}

func TestPlayContactEntersFalling(t *testing.T) {
	cases := []struct {
		name     string
		obstacle bool
		falling  bool
	}{
		{name: "obstacle", obstacle: true, falling: true},
		{name: "ground", obstacle: false, falling: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, cfg.StatePlay, 0)
			UpdateGameState(g.ecs)

			contacts := components.Contacts.Get(g.entry())
			contacts.HitObstacle = tc.obstacle
			contacts.HitGround = !tc.obstacle
			UpdateGameState(g.ecs)

			if got := g.state().Current; got != cfg.StateFalling {
				t.Fatalf("expected Falling, got %s", got)
			}
			if contacts.Any() {
				t.Fatal("contacts should be consumed")
			}
			if _, ok := tags.Ghost.First(g.ecs.World); !ok {
				t.Fatal("expected a ghost")
			}
			if components.Spawner.Get(g.entry()).Running {
				t.Fatal("spawner should stop when the run ends")
			}

			audio := GetOrCreateAudio(g.ecs)
			var whack, falling bool
			for _, id := range audio.PendingSFX {
				whack = whack || id == cfg.SoundWhack
				falling = falling || id == cfg.SoundFalling
			}
			if !whack {
				t.Fatal("expected the whack sound")
			}
			if falling != tc.falling {
				t.Fatalf("falling sound = %v, want %v", falling, tc.falling)
			}
		})
	}
}

func TestFallingWaitsForGhostAboveScreen(t *testing.T) {
	g := newTestGame(t, cfg.StateFalling, 0)
	UpdateGameState(g.ecs)

	ghost, ok := tags.Ghost.First(g.ecs.World)
	if !ok {
		t.Fatal("expected a ghost on entering Falling")
	}
	obj := components.Object.Get(ghost)

	cases := []struct {
		name string
		y    float64
		want cfg.GameStateID
	}{
		{name: "on screen", y: 100, want: cfg.StateFalling},
		{name: "one pixel visible", y: -obj.H + 1, want: cfg.StateFalling},
		{name: "bottom edge on the top edge", y: -obj.H, want: cfg.StateFalling},
		{name: "fully above", y: -obj.H - 0.5, want: cfg.StateShowingScore},
	}

	for _, tc := range cases {
		obj.Y = tc.y
		UpdateGameState(g.ecs)
		if got := g.state().Current; got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}

	if CountPanels(g.ecs, components.PanelScorecard) != 1 {
		t.Fatal("expected the scorecard in ShowingScore")
	}
}

func TestCeilingDeathGhostStartsOnScreen(t *testing.T) {
	g := newTestGame(t, cfg.StatePlay, 0)
	UpdateGameState(g.ecs)

	player, _ := tags.Player.First(g.ecs.World)
	components.Object.Get(player).Y = 0
	components.Contacts.Get(g.entry()).HitObstacle = true
	UpdateGameState(g.ecs)
	if g.state().Current != cfg.StateFalling {
		t.Fatalf("expected Falling, got %s", g.state().Current)
	}

	ghost, ok := tags.Ghost.First(g.ecs.World)
	if !ok {
		t.Fatal("expected a ghost")
	}
	obj := components.Object.Get(ghost)
	if obj.Y+obj.H <= 0 {
		t.Fatalf("ghost spawned off screen at y=%v", obj.Y)
	}

	UpdateGameState(g.ecs)
	if g.state().Current != cfg.StateFalling {
		t.Fatalf("left Falling before the ghost rose: %s", g.state().Current)
	}

	// Rise until the state machine lets go
	g.setDelta(1.0 / 60)
	ticks := 0
	for ; ticks < 1000 && g.state().Current == cfg.StateFalling; ticks++ {
		UpdateGhost(g.ecs)
		UpdateLifetime(g.ecs)
		UpdateGameState(g.ecs)
	}
	if g.state().Current != cfg.StateShowingScore {
		t.Fatalf("expected ShowingScore, got %s", g.state().Current)
	}
	if ticks < 2 {
		t.Fatalf("ghost left after %d ticks, expected it to float up first", ticks)
	}
}

func TestGhostSpawnsOverPlayer(t *testing.T) {
	world, err := leveldata.LoadDefaultWorld()
	if err != nil {
		t.Fatal(err)
	}
	ground := world.Ground.Y

	for _, y := range []float64{0, 100, ground - cfg.Player.Height} {
		g := newTestGame(t, cfg.StateFalling, 0)
		ghost := factory.CreateGhost(g.ecs, 50, y, cfg.Player.Width, cfg.Player.Height)
		obj := components.Object.Get(ghost)

		if obj.Y+obj.H <= 0 {
			t.Fatalf("player y=%v: ghost off screen at %v", y, obj.Y)
		}
		if obj.Y > y+cfg.Player.Height || obj.Y+obj.H < y {
			t.Fatalf("player y=%v: ghost at %v does not overlap the player", y, obj.Y)
		}
	}
}

func TestShowingScoreTimerEntersGameOver(t *testing.T) {
	g := newTestGame(t, cfg.StateShowingScore, 0)
	UpdateGameState(g.ecs)

	g.setDelta(cfg.Timing.ShowScoreHold * 0.6)
	UpdateGameState(g.ecs)
	if got := g.state().Current; got != cfg.StateShowingScore {
		t.Fatalf("left ShowingScore early: %s", got)
	}

	UpdateGameState(g.ecs)
	if got := g.state().Current; got != cfg.StateGameOver {
		t.Fatalf("expected GameOver, got %s", got)
	}

	var buttons bool
	components.Panel.Each(g.ecs.World, func(entry *donburi.Entry) {
		p := components.Panel.Get(entry)
		if p.Kind == components.PanelScorecard {
			buttons = p.ShowButtons
		}
	})
	if !buttons {
		t.Fatal("scorecard should show its buttons in GameOver")
	}
}

func TestGameOverTaps(t *testing.T) {
	g := newTestGame(t, cfg.StateGameOver, 0)
	UpdateGameState(g.ecs)

	g.tap(rightX())
	UpdateGameState(g.ecs)
	if g.state().Current != cfg.StateGameOver || g.state().RestartRequested {
		t.Fatal("share must not change state")
	}
	services := components.Services.Get(g.entry())
	if !services.SharePending {
		t.Fatal("expected a pending share")
	}

	FlushShare(g.ecs, func() ([]byte, error) { return []byte("png"), nil })
	if len(g.share.texts) != 1 || services.SharePending {
		t.Fatalf("expected one share, got %d (pending=%v)", len(g.share.texts), services.SharePending)
	}

	g.tap(leftX())
	UpdateGameState(g.ecs)
	if start, ok := PendingRestart(g.ecs); !ok || start != cfg.StateMainMenu {
		t.Fatalf("expected a new scene in MainMenu, got %s, %v", start, ok)
	}
}

func TestChangeStateRejectsUndeclaredTransitions(t *testing.T) {
	g := newTestGame(t, cfg.StateTutorial, 0)
	UpdateGameState(g.ecs)

	for _, to := range []cfg.GameStateID{cfg.StateGameOver, cfg.StateFalling, cfg.StateShowingScore, cfg.StateMainMenu} {
		if ChangeState(g.ecs, to) {
			t.Fatalf("Tutorial -> %s should be rejected", to)
		}
	}
	if g.state().Current != cfg.StateTutorial {
		t.Fatalf("state moved to %s", g.state().Current)
	}

	if !ChangeState(g.ecs, cfg.StatePlay) {
		t.Fatal("Tutorial -> Play should be accepted")
	}
	if g.state().Current != cfg.StatePlay {
		t.Fatalf("expected Play, got %s", g.state().Current)
	}
}

func TestInStateGatesSystems(t *testing.T) {
	g := newTestGame(t, cfg.StateMainMenu, 0)

	calls := 0
	sys := InState(func(*ecs.ECS) { calls++ }, cfg.StatePlay, cfg.StateFalling)

	sys(g.ecs)
	g.state().Current = cfg.StatePlay
	sys(g.ecs)
	g.state().Current = cfg.StateFalling
	sys(g.ecs)

	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}
