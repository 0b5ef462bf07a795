package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/shared/leveldata"
	"github.com/automoto/flappy-gopher/systems"
	"github.com/automoto/flappy-gopher/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SceneOptions is carried from one GameScene to the next.
type SceneOptions struct {
	Start    cfg.GameStateID
	World    *leveldata.World
	Seed     int64
	Services components.ServicesData
	Tuning   string       // re-applied when the watcher fires
	Watcher  *cfg.Watcher // nil unless running with -debug
}

// GameScene hosts one run of the game flow, from its start state until a
// transition asks for a fresh scene.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         SceneOptions
	once         sync.Once
	quit         bool
}

func NewGameScene(sc SceneChanger, opts SceneOptions) *GameScene {
	return &GameScene{sceneChanger: sc, opts: opts}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)
	gs.pollTuning()
	gs.ecs.Update()

	if systems.QuitRequested(gs.ecs) {
		gs.quit = true
		return
	}

	if start, ok := systems.PendingRestart(gs.ecs); ok {
		next := gs.opts
		next.Start = start
		next.Seed++
		gs.sceneChanger.ChangeScene(NewGameScene(gs.sceneChanger, next))
	}
}

// QuitRequested reports whether the player asked to close the game.
func (gs *GameScene) QuitRequested() bool {
	return gs.quit
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)

	// After every renderer so a shared screenshot shows the scorecard
	systems.FlushShare(gs.ecs, systems.CaptureScreen(screen))
}

func (gs *GameScene) pollTuning() {
	if gs.opts.Watcher == nil {
		return
	}
	if _, ok := gs.opts.Watcher.Poll(); !ok {
		return
	}
	if err := cfg.LoadTuning(gs.opts.Tuning); err != nil {
		log.Printf("Warning: Could not reload tuning: %v", err)
		return
	}
	log.Printf("Reloaded tuning from %s", gs.opts.Tuning)
}

func (gs *GameScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Clock and input run first, every other system reads them
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateGameState)

	// Backdrop keeps moving until the player dies
	ecs.AddSystem(systems.InState(systems.UpdateScroll, cfg.StateMainMenu, cfg.StateTutorial, cfg.StatePlay))
	ecs.AddSystem(systems.InState(systems.UpdatePlayerIdle, cfg.StateMainMenu, cfg.StateTutorial))

	// Gameplay
	ecs.AddSystem(systems.InState(systems.UpdatePlayer, cfg.StatePlay))
	ecs.AddSystem(systems.InState(systems.UpdateSpawner, cfg.StatePlay))
	ecs.AddSystem(systems.InState(systems.UpdateObstacles, cfg.StatePlay))
	ecs.AddSystem(systems.InState(systems.UpdatePlayerPhysics, cfg.StatePlay, cfg.StateFalling))
	ecs.AddSystem(systems.InState(systems.UpdateScore, cfg.StatePlay))
	ecs.AddSystem(systems.InState(systems.UpdateCollisions, cfg.StatePlay))
	ecs.AddSystem(systems.InState(systems.UpdateGhost, cfg.StateFalling))
	ecs.AddSystem(systems.UpdateLifetime)

	// Presentation
	ecs.AddSystem(systems.UpdatePanels)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPanels)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlays)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	gs.ecs = ecs

	world := gs.opts.World
	if world == nil {
		var err error
		world, err = leveldata.LoadDefaultWorld()
		if err != nil {
			log.Fatalf("Failed to load world: %v", err)
		}
		gs.opts.World = world
	}

	factory.CreateLevel(gs.ecs, world)
	spaceEntry := factory.CreateSpace(gs.ecs, world.Width, world.Height, 16, 16)
	space := components.Space.Get(spaceEntry)
	factory.CreateCamera(gs.ecs)
	factory.CreateBackground(gs.ecs, world, space)

	best := 0
	if gs.opts.Services.Scores != nil {
		best = gs.opts.Services.Scores.BestScore()
	}
	factory.CreateGame(gs.ecs, factory.GameOptions{
		Start:    gs.opts.Start,
		Best:     best,
		Seed:     gs.opts.Seed,
		Services: gs.opts.Services,
	})

	player := factory.CreatePlayer(gs.ecs, world.PlayerSpawn.X, world.PlayerSpawn.Y)
	space.Add(components.Object.Get(player).Object)

	factory.SpawnOverlay(gs.ecs, components.OverlayFade, cfg.Timing.SceneFadeIn)
}
