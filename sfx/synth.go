// Package sfx synthesizes the game's sound effects and renders them into
// PCM that an ebiten audio context can play directly.
package sfx

import (
	"math"
	"math/rand"
	"time"

	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is an oscillator whose frequency moves linearly from start to end
// over its duration.
type sweep struct {
	start, end float64
	phase      float64
	position   int
	total      int
	wave       cfg.WaveType
	rate       beep.SampleRate
	noise      *rand.Rand
}

// NewSweep creates an oscillator gliding from start to end Hz.
func NewSweep(start, end float64, duration time.Duration, wave cfg.WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start: start,
		end:   end,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
		noise: rand.New(rand.NewSource(1)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case cfg.WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case cfg.WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case cfg.WaveNoise:
			val = s.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.total)
		freq := s.start + (s.end-s.start)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is rendered silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Streamer builds the streamer described by spec. With Steps > 1 the
// sound is a run of equal notes climbing from StartFreq to EndFreq.
func Streamer(spec cfg.SynthSpec, rate beep.SampleRate) beep.Streamer {
	if spec.Steps <= 1 {
		osc := NewSweep(spec.StartFreq, spec.EndFreq, seconds(spec.Duration), spec.Wave, rate)
		shaped := NewEnvelope(osc, seconds(spec.Duration), seconds(spec.Attack), seconds(spec.Release), rate)
		return newVolume(shaped, spec.Volume)
	}

	step := spec.Duration / float64(spec.Steps)
	notes := make([]beep.Streamer, 0, spec.Steps)
	for i := 0; i < spec.Steps; i++ {
		freq := spec.StartFreq + (spec.EndFreq-spec.StartFreq)*float64(i)/float64(spec.Steps-1)
		osc := NewSweep(freq, freq, seconds(step), spec.Wave, rate)
		notes = append(notes, NewEnvelope(osc, seconds(step), seconds(spec.Attack), seconds(spec.Release), rate))
	}
	return newVolume(beep.Seq(notes...), spec.Volume)
}
