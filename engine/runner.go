package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/pitch-fighter/event"
	"github.com/lixenwraith/pitch-fighter/input"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/status"
)

// Sink receives one snapshot per frame
type Sink interface {
	Render(Snapshot) error
}

// EventHandler consumes game events after each step
type EventHandler interface {
	HandleEvent(event.GameEvent)
}

// AudioControl is the subset of the audio engine the loop drives directly
// IsEnabled is false while muted and when no device is available
type AudioControl interface {
	Unlock()
	ToggleMute() bool
	IsEnabled() bool
	AdjustVolume(delta float64) float64
}

// RunnerConfig wires the loop to its collaborators
type RunnerConfig struct {
	Sink          Sink
	Handlers      []EventHandler
	Audio         AudioControl // Optional
	Input         <-chan input.Intent
	Registry      *status.Registry // Status line source when Debug is set
	Debug         bool
	FrameInterval time.Duration
	TimerInterval time.Duration
}

// Runner owns the match and drives it from a single goroutine
type Runner struct {
	match *Match
	cfg   RunnerConfig
	state *input.State

	unlocked bool
}

// NewRunner creates a loop over an existing match
func NewRunner(m *Match, cfg RunnerConfig) *Runner {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = parameter.FrameUpdateInterval
	}
	if cfg.TimerInterval <= 0 {
		cfg.TimerInterval = parameter.TimerInterval
	}
	return &Runner{
		match: m,
		cfg:   cfg,
		state: input.NewState(),
	}
}

// Match returns the owned match
func (r *Runner) Match() *Match {
	return r.match
}

// Run blocks until ctx is done, the input channel closes or a quit intent arrives
func (r *Runner) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(r.cfg.FrameInterval)
	defer frameTicker.Stop()
	timerTicker := time.NewTicker(r.cfg.TimerInterval)
	defer timerTicker.Stop()

	r.match.Start()
	r.dispatch()

	for {
		select {
		case <-ctx.Done():
			return nil

		case it, ok := <-r.cfg.Input:
			if !ok {
				return nil
			}
			if quit := r.HandleIntent(it); quit {
				return nil
			}

		case <-timerTicker.C:
			r.Second()

		case <-frameTicker.C:
			if err := r.Frame(); err != nil {
				return fmt.Errorf("render frame %d: %w", r.match.Frame(), err)
			}
		}
	}
}

// Frame steps the match once, dispatches events and renders
func (r *Runner) Frame() error {
	r.match.Step(r.state.Pointer())
	r.dispatch()

	if r.cfg.Sink == nil {
		return nil
	}
	snap := r.match.Snapshot()
	if r.cfg.Audio != nil {
		snap.Muted = !r.cfg.Audio.IsEnabled()
	}
	if r.cfg.Debug && r.cfg.Registry != nil {
		snap.Status = r.cfg.Registry.Summary()
	}
	return r.cfg.Sink.Render(snap)
}

// Second consumes one countdown tick
func (r *Runner) Second() {
	r.match.TickTimer()
	r.dispatch()
}

// HandleIntent applies one input intent, returns true on quit
func (r *Runner) HandleIntent(it input.Intent) bool {
	if it.IsInteraction() && !r.unlocked && r.cfg.Audio != nil {
		r.cfg.Audio.Unlock()
		r.unlocked = true
	}

	m := r.match
	switch it.Type {
	case input.IntentQuit:
		log.Printf("match %s: quit at %d-%d", m.ID, m.ScoreA, m.ScoreB)
		return true

	case input.IntentRestart:
		m.Restart()

	case input.IntentPause:
		paused := m.TogglePause()
		log.Printf("match %s: paused=%v, %v paused in total", m.ID, paused, m.clock.GetTotalPauseDuration())

	case input.IntentMute:
		if r.cfg.Audio != nil {
			r.cfg.Audio.ToggleMute()
		}

	case input.IntentVolume:
		if r.cfg.Audio != nil {
			vol := r.cfg.Audio.AdjustVolume(float64(it.DX) * parameter.AudioVolumeStep)
			log.Printf("match %s: volume %.1f", m.ID, vol)
		}

	case input.IntentSwitch:
		if m.Phase == PhaseRunning {
			m.SwitchControl()
			r.state.Release()
		}

	case input.IntentPointer:
		if it.Pressed && m.Restart() {
			r.state.Release()
			break
		}
		r.applyPointer(it)

	case input.IntentNudge:
		r.applyPointer(it)

	case input.IntentResize:
		m.Resize(FieldForScreen(it.Width, it.Height))
	}

	r.dispatch()
	return false
}

func (r *Runner) applyPointer(it input.Intent) {
	origin := r.match.Field.Center()
	if p := r.match.Roster.Controlled(); p != nil {
		origin = p.Pos
	}
	r.state.Apply(it, origin)
}

// dispatch drains the match event queue into every handler
func (r *Runner) dispatch() {
	for _, ev := range r.match.Events() {
		for _, h := range r.cfg.Handlers {
			h.HandleEvent(ev)
		}
	}
}
