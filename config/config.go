package config

import "image/color"

// PhysicsConfig contains world physics values. Units are pixels and seconds,
// y grows downward.
type PhysicsConfig struct {
	Gravity      float64 // px/s² applied to the player every tick
	MaxFallSpeed float64 // terminal velocity in px/s
}

// PlayerConfig contains player-related configuration values
type PlayerConfig struct {
	// Movement
	Impulse float64 // upward speed set by a flap, px/s

	// Rotation (degrees, positive is nose down)
	AngularVelocity float64 // deg/s
	MaxUpDegrees    float64
	MaxDownDegrees  float64

	// Idle bob in the menu and tutorial
	BobAmplitude float64 // pixels
	BobDuration  float64 // seconds per half cycle

	// Dimensions
	Width       float64
	Height      float64
	HitboxInset float64 // shrink of the collision box on every side
}

// ObstacleConfig contains obstacle pair geometry
type ObstacleConfig struct {
	Width             float64
	Height            float64
	CapHeight         float64 // drawn lip at the open end
	GapMultiplier     float64 // gap = player height * GapMultiplier
	BottomMinFraction float64 // lowest bottom-obstacle top, as a fraction of playable height above ground
	BottomMaxFraction float64 // highest bottom-obstacle top
}

// SpawnerConfig contains obstacle spawn timing
type SpawnerConfig struct {
	FirstSpawnDelay float64 // seconds after entering Play
	SpawnInterval   float64 // seconds between pairs
}

// ScrollConfig contains default scroll layer values. The world map can
// override speeds and tile counts per layer.
type ScrollConfig struct {
	ForegroundSpeed float64 // also the obstacle speed
	ForegroundTiles int
	MidgroundSpeed  float64
	MidgroundTiles  int
}

// GhostConfig contains the death ghost animation
type GhostConfig struct {
	RiseSpeed      float64 // px/s upward
	SwayAmplitude  float64 // pixels
	SwayFrequency  float64 // Hz
	PulseDuration  float64 // seconds per alpha half cycle
	PulseMinAlpha  float64
	Width          float64
	Height         float64
	StartAlpha     float64
	MaxLifetimeSec float64 // safety net if the ghost never leaves the screen
}

// TimingConfig contains frame and UI timing values
type TimingConfig struct {
	MaxFrameDelta     float64 // clamp for a single tick, seconds
	ScoreCardDelay    float64 // delay before the scorecard slides in
	ScoreCardDuration float64 // slide-in duration
	ShowScoreHold     float64 // time spent in ShowingScore before GameOver
	PanelFadeIn       float64
	PanelFadeOut      float64
	SceneFadeIn       float64
}

// EffectsConfig contains hit feedback values
type EffectsConfig struct {
	ShakeIntensity float64 // pixels
	ShakeDuration  float64 // seconds
	FlashDuration  float64 // seconds
}

// PaletteConfig contains every colour the renderer uses
type PaletteConfig struct {
	Sky          color.RGBA
	Cloud        color.RGBA
	Hills        color.RGBA
	HillsDark    color.RGBA
	Ground       color.RGBA
	GroundStripe color.RGBA
	Grass        color.RGBA
	Pipe         color.RGBA
	PipeShade    color.RGBA
	PipeCap      color.RGBA
	Bird         color.RGBA
	BirdWing     color.RGBA
	BirdBeak     color.RGBA
	Eye          color.RGBA
	Pupil        color.RGBA
	Ghost        color.RGBA
	Text         color.RGBA
	TextShadow   color.RGBA
	Flash        color.RGBA
	Fade         color.RGBA
}

// PanelConfig contains UI panel colours and sizes
type PanelConfig struct {
	Background   color.RGBA
	Border       color.RGBA
	Title        color.RGBA
	Label        color.RGBA
	Value        color.RGBA
	Badge        color.RGBA
	PlateLeft    color.RGBA
	PlateRight   color.RGBA
	PlateText    color.RGBA
	Hint         color.RGBA
	TitleSize    float64
	LabelSize    float64
	SmallSize    float64
	SlideOffsetY float64 // panels slide in from this far below their resting place
}

// LinksConfig contains outbound links and share text
type LinksConfig struct {
	RateURL       string
	ShareTemplate string // fmt template taking the score
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	Scale  float64 // window scale relative to the logical size
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled  bool // draw collision boxes, watch the tuning file
	SkipMenu bool // start the first scene in Tutorial
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Obstacle ObstacleConfig
var Spawner SpawnerConfig
var Scroll ScrollConfig
var Ghost GhostConfig
var Timing TimingConfig
var Effects EffectsConfig
var Palette PaletteConfig
var Panel PanelConfig
var Links LinksConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
)

func init() {
	C = &Config{
		Width:  320,
		Height: 568,
		Title:  "Flappy Gopher",
		Scale:  1.25,
	}

	Physics = PhysicsConfig{
		Gravity:      1500,
		MaxFallSpeed: 900,
	}

	Player = PlayerConfig{
		Impulse: 400,

		AngularVelocity: 1000,
		MaxUpDegrees:    -25,
		MaxDownDegrees:  90,

		BobAmplitude: 6,
		BobDuration:  0.4,

		Width:       34,
		Height:      24,
		HitboxInset: 3,
	}

	Obstacle = ObstacleConfig{
		Width:             54,
		Height:            320,
		CapHeight:         14,
		GapMultiplier:     4.5,
		BottomMinFraction: 0.1,
		BottomMaxFraction: 0.6,
	}

	Spawner = SpawnerConfig{
		FirstSpawnDelay: 1.75,
		SpawnInterval:   1.5,
	}

	Scroll = ScrollConfig{
		ForegroundSpeed: 150,
		ForegroundTiles: 2,
		MidgroundSpeed:  40,
		MidgroundTiles:  2,
	}

	Ghost = GhostConfig{
		RiseSpeed:      110,
		SwayAmplitude:  8,
		SwayFrequency:  1.5,
		PulseDuration:  0.35,
		PulseMinAlpha:  0.35,
		Width:          26,
		Height:         30,
		StartAlpha:     0.85,
		MaxLifetimeSec: 10,
	}

	Timing = TimingConfig{
		MaxFrameDelta:     0.1,
		ScoreCardDelay:    0.3,
		ScoreCardDuration: 0.45,
		ShowScoreHold:     1.2,
		PanelFadeIn:       0.3,
		PanelFadeOut:      0.25,
		SceneFadeIn:       0.4,
	}

	Effects = EffectsConfig{
		ShakeIntensity: 6,
		ShakeDuration:  0.3,
		FlashDuration:  0.2,
	}

	Palette = PaletteConfig{
		Sky:          color.RGBA{R: 112, G: 197, B: 206, A: 255},
		Cloud:        color.RGBA{R: 234, G: 252, B: 219, A: 255},
		Hills:        color.RGBA{R: 94, G: 190, B: 88, A: 255},
		HillsDark:    color.RGBA{R: 72, G: 160, B: 70, A: 255},
		Ground:       color.RGBA{R: 222, G: 216, B: 149, A: 255},
		GroundStripe: color.RGBA{R: 205, G: 196, B: 120, A: 255},
		Grass:        color.RGBA{R: 115, G: 191, B: 46, A: 255},
		Pipe:         color.RGBA{R: 116, G: 191, B: 46, A: 255},
		PipeShade:    color.RGBA{R: 84, G: 140, B: 36, A: 255},
		PipeCap:      color.RGBA{R: 134, G: 214, B: 60, A: 255},
		Bird:         color.RGBA{R: 92, G: 200, B: 232, A: 255},
		BirdWing:     color.RGBA{R: 60, G: 150, B: 190, A: 255},
		BirdBeak:     color.RGBA{R: 250, G: 160, B: 60, A: 255},
		Eye:          White,
		Pupil:        Black,
		Ghost:        color.RGBA{R: 240, G: 244, B: 255, A: 255},
		Text:         White,
		TextShadow:   color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Flash:        White,
		Fade:         Black,
	}

	Panel = PanelConfig{
		Background:   color.RGBA{R: 222, G: 216, B: 149, A: 240},
		Border:       color.RGBA{R: 84, G: 56, B: 71, A: 255},
		Title:        BrightOrange,
		Label:        color.RGBA{R: 232, G: 97, B: 1, A: 255},
		Value:        White,
		Badge:        Red,
		PlateLeft:    color.RGBA{R: 232, G: 97, B: 1, A: 255},
		PlateRight:   color.RGBA{R: 84, G: 56, B: 71, A: 255},
		PlateText:    White,
		Hint:         White,
		TitleSize:    30,
		LabelSize:    16,
		SmallSize:    12,
		SlideOffsetY: 60,
	}

	Links = LinksConfig{
		RateURL:       "https://apps.apple.com/app/id820464950",
		ShareTemplate: "I scored %d in Flappy Gopher!",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:  false,
		SkipMenu: false,
	}
}
