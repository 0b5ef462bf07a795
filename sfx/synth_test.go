package sfx

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/gopxl/beep"
)

func TestSweepStreamsExactDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond
	osc := NewSweep(440, 880, duration, cfg.WaveSine, rate)

	total := 0
	buf := make([][2]float64, 256)
	for {
		n, ok := osc.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", i, buf[i][0])
			}
		}
		if !ok {
			break
		}
	}

	if want := rate.N(duration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestSquareSweepIsBipolar(t *testing.T) {
	osc := NewSweep(220, 220, 20*time.Millisecond, cfg.WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f, want +-1", i, v)
		}
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 40 * time.Millisecond
	osc := NewSweep(0, 0, d, cfg.WaveSquare, rate)
	env := NewEnvelope(osc, d, 5*time.Millisecond, 5*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	if n == 0 {
		t.Fatal("no samples streamed")
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %f, want 1", mid)
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %f, want near 0", last)
	}
}

func TestSynthesizeFormat(t *testing.T) {
	rate := beep.SampleRate(cfg.Audio.SampleRate)

	tests := []struct {
		name string
		id   cfg.SoundID
	}{
		{"flap", cfg.SoundFlap},
		{"whack", cfg.SoundWhack},
		{"falling", cfg.SoundFalling},
		{"hit_ground", cfg.SoundHitGround},
		{"pop", cfg.SoundPop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm, err := Synthesize(tt.id, cfg.Audio.SampleRate)
			if err != nil {
				t.Fatalf("Synthesize: %v", err)
			}

			spec := cfg.Sound.Synth[tt.id]
			want := rate.N(seconds(spec.Duration)) * BytesPerFrame
			if len(pcm) != want {
				t.Errorf("len = %d, want %d", len(pcm), want)
			}

			limit := int(spec.Volume*math.MaxInt16) + 1
			for i := 0; i+1 < len(pcm); i += 2 {
				v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
				if v > limit || v < -limit {
					t.Fatalf("sample at byte %d = %d exceeds volume limit %d", i, v, limit)
				}
			}
		})
	}
}

func TestSynthesizeSteps(t *testing.T) {
	spec := cfg.Sound.Synth[cfg.SoundCoin]
	pcm, err := Synthesize(cfg.SoundCoin, cfg.Audio.SampleRate)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	step := rate.N(seconds(spec.Duration / float64(spec.Steps)))
	if want := step * spec.Steps * BytesPerFrame; len(pcm) != want {
		t.Errorf("len = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeUnknownSound(t *testing.T) {
	if _, err := Synthesize(cfg.SoundNone, cfg.Audio.SampleRate); err == nil {
		t.Error("expected error for a sound without a recipe")
	}
}
