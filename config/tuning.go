package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultTuning []byte

// Tuning is the YAML overlay for gameplay values. Nil fields keep the
// current value.
type Tuning struct {
	Physics struct {
		Gravity      *float64 `yaml:"gravity"`
		MaxFallSpeed *float64 `yaml:"max_fall_speed"`
	} `yaml:"physics"`
	Player struct {
		Impulse         *float64 `yaml:"impulse"`
		AngularVelocity *float64 `yaml:"angular_velocity"`
		MaxUpDegrees    *float64 `yaml:"max_up_degrees"`
		MaxDownDegrees  *float64 `yaml:"max_down_degrees"`
	} `yaml:"player"`
	Obstacle struct {
		GapMultiplier     *float64 `yaml:"gap_multiplier"`
		BottomMinFraction *float64 `yaml:"bottom_min_fraction"`
		BottomMaxFraction *float64 `yaml:"bottom_max_fraction"`
	} `yaml:"obstacle"`
	Spawner struct {
		FirstSpawnDelay *float64 `yaml:"first_spawn_delay"`
		SpawnInterval   *float64 `yaml:"spawn_interval"`
	} `yaml:"spawner"`
	Scroll struct {
		ForegroundSpeed *float64 `yaml:"foreground_speed"`
		MidgroundSpeed  *float64 `yaml:"midground_speed"`
	} `yaml:"scroll"`
	Ghost struct {
		RiseSpeed     *float64 `yaml:"rise_speed"`
		SwayAmplitude *float64 `yaml:"sway_amplitude"`
	} `yaml:"ghost"`
	Timing struct {
		ShowScoreHold *float64 `yaml:"show_score_hold"`
	} `yaml:"timing"`
}

// ParseTuning decodes a tuning document and validates the ranges that
// would break the game if wrong.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: unmarshal tuning: %w", err)
	}

	if lo, hi := t.Obstacle.BottomMinFraction, t.Obstacle.BottomMaxFraction; lo != nil && hi != nil && *lo > *hi {
		return nil, fmt.Errorf("config: bottom_min_fraction %.2f above bottom_max_fraction %.2f", *lo, *hi)
	}
	for name, v := range map[string]*float64{
		"spawn_interval":    t.Spawner.SpawnInterval,
		"first_spawn_delay": t.Spawner.FirstSpawnDelay,
		"gap_multiplier":    t.Obstacle.GapMultiplier,
		"rise_speed":        t.Ghost.RiseSpeed,
	} {
		if v != nil && *v <= 0 {
			return nil, fmt.Errorf("config: %s must be positive, got %v", name, *v)
		}
	}

	return &t, nil
}

// Apply copies every set field onto the global configuration.
func (t *Tuning) Apply() {
	set(&Physics.Gravity, t.Physics.Gravity)
	set(&Physics.MaxFallSpeed, t.Physics.MaxFallSpeed)

	set(&Player.Impulse, t.Player.Impulse)
	set(&Player.AngularVelocity, t.Player.AngularVelocity)
	set(&Player.MaxUpDegrees, t.Player.MaxUpDegrees)
	set(&Player.MaxDownDegrees, t.Player.MaxDownDegrees)

	set(&Obstacle.GapMultiplier, t.Obstacle.GapMultiplier)
	set(&Obstacle.BottomMinFraction, t.Obstacle.BottomMinFraction)
	set(&Obstacle.BottomMaxFraction, t.Obstacle.BottomMaxFraction)

	set(&Spawner.FirstSpawnDelay, t.Spawner.FirstSpawnDelay)
	set(&Spawner.SpawnInterval, t.Spawner.SpawnInterval)

	set(&Scroll.ForegroundSpeed, t.Scroll.ForegroundSpeed)
	set(&Scroll.MidgroundSpeed, t.Scroll.MidgroundSpeed)

	set(&Ghost.RiseSpeed, t.Ghost.RiseSpeed)
	set(&Ghost.SwayAmplitude, t.Ghost.SwayAmplitude)

	set(&Timing.ShowScoreHold, t.Timing.ShowScoreHold)
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// LoadTuning applies the tuning file at path, or the embedded defaults
// when path is empty.
func LoadTuning(path string) error {
	data := defaultTuning
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: read tuning %s: %w", path, err)
		}
		data = b
	}

	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}
