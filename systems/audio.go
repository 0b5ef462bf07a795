package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/flappy-gopher/assets"
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalOverrides    fs.FS
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// SetAudioOverrides sets the directory searched for sound files before
// falling back to synthesized sounds. Must be called before the first scene.
func SetAudioOverrides(fsys fs.FS) {
	globalOverrides = fsys
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, globalOverrides)
	})
}

// PreloadAllSFX synthesizes or decodes all sound effects at startup to
// avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id := range cfg.Sound.Synth {
		_ = globalAudioLoader.PreloadSFX(id)
	}
}

// UpdateAudio plays the sound effects queued this tick.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	initGlobalAudio()

	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMuted silences or restores sound effects.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	GetOrCreateAudio(e).Muted = muted
}

// IsMuted reports the global mute setting.
func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// UpdateSettings toggles mute on the mute key and saves the setting.
func UpdateSettings(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	if !JustPressed(input, cfg.ActionMute) {
		return
	}
	SetMuted(e, !globalMuted)
	_ = SaveSettings(&SavedSettings{SFXVolume: globalSFXVolume, Muted: globalMuted})
}
