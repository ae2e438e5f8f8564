package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundLand
	SoundPop
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate       int
	DefaultMasterVol float64
	RollingGain      float64 // Gain of the wheel loop at full speed
	VolumeSteps      []float64
}

// SoundConfig contains per-effect gains for the synthesized sounds
type SoundConfig struct {
	Gains map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:       44100,
		DefaultMasterVol: 0.75,
		RollingGain:      0.6,
		VolumeSteps:      []float64{0, 0.25, 0.5, 0.75, 1.0},
	}

	Sound = SoundConfig{
		Gains: map[SoundID]float64{
			SoundLand: 0.9,
			SoundPop:  0.5,
		},
	}
}
