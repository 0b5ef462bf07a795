package main

import (
	"flag"
	"image"
	"log"
	"os"
	"time"

	"github.com/automoto/flappy-gopher/components"
	"github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/fonts"
	"github.com/automoto/flappy-gopher/scenes"
	"github.com/automoto/flappy-gopher/shared/leveldata"
	"github.com/automoto/flappy-gopher/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.SceneOptions) *Game {
	fonts.LoadDefaultFonts(config.Panel.TitleSize, config.Panel.LabelSize, config.Panel.SmallSize)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		opts.Start = config.StateTutorial
	}
	g.scene = scenes.NewGameScene(g, opts)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if gs, ok := g.scene.(*scenes.GameScene); ok && gs.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "draw collision boxes and watch the tuning file")
	skipMenu := flag.Bool("skip-menu", false, "start in the tutorial")
	tuning := flag.String("tuning", "", "YAML file overriding gameplay values")
	audioDir := flag.String("audio-dir", "", "directory of WAV/OGG files replacing synthesized sounds")
	scale := flag.Float64("scale", config.C.Scale, "window scale")
	seed := flag.Int64("seed", 0, "obstacle RNG seed (0 picks one from the clock)")
	flag.Parse()

	config.Debug.Enabled = *debug
	config.Debug.SkipMenu = *skipMenu

	if err := config.LoadTuning(*tuning); err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
	}

	var watcher *config.Watcher
	if *debug && *tuning != "" {
		w, err := config.NewWatcher(*tuning)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	world, err := leveldata.LoadDefaultWorld()
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}
	config.C.Width, config.C.Height = world.Width, world.Height

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if *audioDir != "" {
		systems.SetAudioOverrides(os.DirFS(*audioDir))
	}
	systems.PreloadAllSFX()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := scenes.SceneOptions{
		Start: config.StateMainMenu,
		World: world,
		Seed:  *seed,
		Services: components.ServicesData{
			Scores: systems.GdataScoreStore{},
			Links:  systems.BrowserOpener{},
			Share:  &systems.ClipboardSharer{},
		},
		Tuning:  *tuning,
		Watcher: watcher,
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(int(float64(config.C.Width)**scale), int(float64(config.C.Height)**scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
