package sfx

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/gopxl/beep"
)

// BytesPerFrame is the size of one stereo frame of 16-bit PCM.
const BytesPerFrame = 4

// Render drains s into signed 16-bit little-endian stereo PCM, the format
// ebiten's audio context plays.
func Render(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("sfx: render: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Synthesize renders the recipe for id at the given sample rate.
func Synthesize(id cfg.SoundID, sampleRate int) ([]byte, error) {
	spec, ok := cfg.Sound.Synth[id]
	if !ok {
		return nil, fmt.Errorf("sfx: no recipe for sound %d", id)
	}
	return Render(Streamer(spec, beep.SampleRate(sampleRate)))
}
