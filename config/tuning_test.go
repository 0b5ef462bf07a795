package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// saveTuned restores every value the tuning file can touch.
func saveTuned(t *testing.T) {
	t.Helper()
	physics, player, obstacle := Physics, Player, Obstacle
	spawner, scroll, ghost, timing := Spawner, Scroll, Ghost, Timing
	t.Cleanup(func() {
		Physics, Player, Obstacle = physics, player, obstacle
		Spawner, Scroll, Ghost, Timing = spawner, scroll, ghost, timing
	})
}

func TestTuningOverlay(t *testing.T) {
	saveTuned(t)
	impulse := Player.Impulse

	tun, err := ParseTuning([]byte(`
physics:
  gravity: 2000
spawner:
  spawn_interval: 2.5
`))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	tun.Apply()

	if Physics.Gravity != 2000 {
		t.Fatalf("gravity = %v, want 2000", Physics.Gravity)
	}
	if Spawner.SpawnInterval != 2.5 {
		t.Fatalf("spawn interval = %v, want 2.5", Spawner.SpawnInterval)
	}
	if Player.Impulse != impulse {
		t.Fatalf("unset impulse changed: %v", Player.Impulse)
	}
}

func TestParseTuningErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{name: "bad yaml", doc: "physics: [", want: "unmarshal"},
		{name: "inverted band", doc: "obstacle:\n  bottom_min_fraction: 0.7\n  bottom_max_fraction: 0.2\n", want: "bottom_min_fraction"},
		{name: "zero interval", doc: "spawner:\n  spawn_interval: 0\n", want: "spawn_interval"},
		{name: "negative gap", doc: "obstacle:\n  gap_multiplier: -1\n", want: "gap_multiplier"},
		{name: "zero rise speed", doc: "ghost:\n  rise_speed: 0\n", want: "rise_speed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadTuning(t *testing.T) {
	saveTuned(t)

	if err := LoadTuning(""); err != nil {
		t.Fatalf("embedded tuning: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("scroll:\n  foreground_speed: 210\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadTuning(path); err != nil {
		t.Fatalf("LoadTuning(%s): %v", path, err)
	}
	if Scroll.ForegroundSpeed != 210 {
		t.Fatalf("foreground speed = %v, want 210", Scroll.ForegroundSpeed)
	}

	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
