package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFlap
	SoundCoin
	SoundWhack
	SoundFalling
	SoundHitGround
	SoundPop
)

// WaveType selects the oscillator used by a synthesized sound
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// SynthSpec describes a synthesized sound effect. Frequency sweeps
// linearly from StartFreq to EndFreq; Steps > 1 splits the sound into
// equal notes climbing from StartFreq to EndFreq instead.
type SynthSpec struct {
	Wave      WaveType
	StartFreq float64 // Hz
	EndFreq   float64 // Hz
	Steps     int
	Duration  float64 // seconds
	Attack    float64 // seconds
	Release   float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synth recipes and optional override files
type SoundConfig struct {
	Synth             map[SoundID]SynthSpec
	Files             map[SoundID]string // looked up in the -audio-dir directory
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Synth: map[SoundID]SynthSpec{
			SoundFlap: {
				Wave: WaveSquare, StartFreq: 330, EndFreq: 660,
				Duration: 0.09, Attack: 0.005, Release: 0.04, Volume: 0.25,
			},
			SoundCoin: {
				Wave: WaveSquare, StartFreq: 988, EndFreq: 1319, Steps: 2,
				Duration: 0.18, Attack: 0.005, Release: 0.06, Volume: 0.3,
			},
			SoundWhack: {
				Wave: WaveNoise, StartFreq: 0, EndFreq: 0,
				Duration: 0.12, Attack: 0.001, Release: 0.08, Volume: 0.5,
			},
			SoundFalling: {
				Wave: WaveSine, StartFreq: 880, EndFreq: 220,
				Duration: 0.6, Attack: 0.01, Release: 0.2, Volume: 0.35,
			},
			SoundHitGround: {
				Wave: WaveSine, StartFreq: 140, EndFreq: 60,
				Duration: 0.15, Attack: 0.002, Release: 0.1, Volume: 0.6,
			},
			SoundPop: {
				Wave: WaveSine, StartFreq: 520, EndFreq: 1040,
				Duration: 0.08, Attack: 0.002, Release: 0.05, Volume: 0.4,
			},
		},
		Files: map[SoundID]string{
			SoundFlap:      "flap.wav",
			SoundCoin:      "coin.wav",
			SoundWhack:     "whack.wav",
			SoundFalling:   "falling.wav",
			SoundHitGround: "hitGround.wav",
			SoundPop:       "pop.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundWhack: 1.2,
		},
	}
}
