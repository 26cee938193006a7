package audio

import (
	"github.com/lixenwraith/pitch-fighter/event"
)

// SoundFor maps a game event to its effect
func SoundFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.EventWallBounce:
		return SoundWallBounce, true
	case event.EventKick:
		return SoundKick, true
	case event.EventGoal:
		return SoundGoal, true
	case event.EventWhistle:
		return SoundWhistle, true
	case event.EventGameOver:
		return SoundGameOver, true
	default:
		return 0, false
	}
}

// Dispatcher forwards game events to an audio Player
type Dispatcher struct {
	player Player
}

// NewDispatcher creates a dispatcher over the given player
func NewDispatcher(p Player) *Dispatcher {
	return &Dispatcher{player: p}
}

// HandleEvent plays the effect for the event, if any
func (d *Dispatcher) HandleEvent(ev event.GameEvent) {
	if d.player == nil {
		return
	}
	if st, ok := SoundFor(ev.Type); ok {
		d.player.Play(st)
	}
}
