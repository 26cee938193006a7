package audio

import (
	"github.com/lixenwraith/pitch-fighter/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundWallBounce: 0.4,
			SoundKick:       0.6,
			SoundGoal:       0.8,
			SoundWhistle:    0.7,
			SoundGameOver:   0.8,
		},
	}
}

// volumeFor returns the effective linear volume for a sound
func (c *AudioConfig) volumeFor(st SoundType) float64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return c.EffectVolumes[st] * c.MasterVolume
}
