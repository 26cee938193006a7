package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/status"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// AudioEngine plays synthesized effects through the beep speaker
// Playback is fire-and-forget: Play hands the streamer to the speaker goroutine and returns
type AudioEngine struct {
	config *AudioConfig

	// play and shutdown are swapped out in tests to run without a device
	play     func(beep.Streamer)
	shutdown func()

	running    atomic.Bool
	muted      atomic.Bool
	unlocked   atomic.Bool
	silentMode atomic.Bool

	played  *atomic.Int64
	dropped *atomic.Int64

	mu sync.RWMutex // Protects config
}

// NewAudioEngine creates an audio engine, nil cfg selects defaults
func NewAudioEngine(cfg *AudioConfig, reg *status.Registry) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	ae := &AudioEngine{
		config:  cfg,
		played:  reg.Ints.Get(status.KeySoundsPlayed),
		dropped: reg.Ints.Get(status.KeySoundsDropped),
		play: func(s beep.Streamer) {
			speaker.Play(s)
		},
		shutdown: func() {
			speaker.Clear()
			speaker.Close()
		},
	}
	ae.muted.Store(!cfg.Enabled)
	return ae
}

// Start initializes the speaker
// On failure the engine stays usable in silent mode and the wrapped ErrAudioUnavailable is returned
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrAlreadyRunning
	}

	rate := beep.SampleRate(ae.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		ae.silentMode.Store(true)
		ae.running.Store(true)
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	ae.running.Store(true)
	return nil
}

// Stop clears pending sounds and releases the device
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	if !ae.silentMode.Load() {
		ae.shutdown()
	}
}

// Unlock enables playback, called on the first user interaction
func (ae *AudioEngine) Unlock() {
	ae.unlocked.Store(true)
}

// Play queues a sound for playback, returns false when the sound was dropped
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.IsEnabled() || !ae.unlocked.Load() {
		ae.dropped.Add(1)
		return false
	}

	ae.mu.RLock()
	s := GetSoundEffect(st, ae.config)
	ae.mu.RUnlock()

	if s == nil {
		ae.dropped.Add(1)
		return false
	}

	ae.play(s)
	ae.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsEnabled returns true if running, unmuted and backed by a device
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// AdjustVolume shifts the master volume for subsequent sounds, returns the new volume
func (ae *AudioEngine) AdjustVolume(delta float64) float64 {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	ae.config.MasterVolume = vmath.Clamp(ae.config.MasterVolume+delta, 0, 1)
	return ae.config.MasterVolume
}
