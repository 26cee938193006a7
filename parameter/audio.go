package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume applied when no config is present
	AudioDefaultVolume = 0.5

	// AudioVolumeStep is the master volume change per + or - press
	AudioVolumeStep = 0.1
)

// Tones, attack and release are shared across tones
const (
	ToneAttack  = 5 * time.Millisecond
	ToneRelease = 30 * time.Millisecond

	WallBounceFreq     = 300.0
	WallBounceDuration = 60 * time.Millisecond

	KickFreq     = 600.0
	KickDuration = 120 * time.Millisecond

	GoalFreq     = 900.0
	GoalDuration = 200 * time.Millisecond

	WhistleFreq     = 1200.0
	WhistleDuration = 250 * time.Millisecond

	GameOverFreq1    = 440.0
	GameOverFreq2    = 330.0
	GameOverDuration = 300 * time.Millisecond
)
