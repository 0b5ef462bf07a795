package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of sound effects. Files found in
// the override directory win over the synthesized versions.
type AudioLoader struct {
	sfxCache  map[cfg.SoundID][]byte // decoded 16-bit stereo PCM
	missing   map[cfg.SoundID]bool   // failed once, never retried
	context   *audio.Context
	overrides fs.FS
}

// NewAudioLoader creates a new audio loader with the given context. overrides
// may be nil.
func NewAudioLoader(ctx *audio.Context, overrides fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache:  make(map[cfg.SoundID][]byte),
		missing:   make(map[cfg.SoundID]bool),
		context:   ctx,
		overrides: overrides,
	}
}

// PreloadSFX decodes or synthesizes a sound effect and caches it without
// creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	if l.missing[id] {
		return fmt.Errorf("sound %d unavailable", id)
	}

	decoded, err := l.load(id)
	if err != nil {
		l.missing[id] = true
		log.Printf("Warning: Could not load sound %d: %v", id, err)
		return err
	}

	l.sfxCache[id] = decoded
	return nil
}

// LoadSFX returns a new player for the sound each time. A sound that
// cannot be loaded returns an error and no player.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

func (l *AudioLoader) load(id cfg.SoundID) ([]byte, error) {
	if name, ok := cfg.Sound.Files[id]; ok && l.overrides != nil {
		data, err := fs.ReadFile(l.overrides, name)
		if err == nil {
			return l.decode(name, data)
		}
	}
	return sfx.Synthesize(id, l.context.SampleRate())
}

func (l *AudioLoader) decode(name string, data []byte) ([]byte, error) {
	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}
