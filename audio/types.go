package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundWallBounce SoundType = iota // Ball off a touchline or end line
	SoundKick                        // Player-ball contact
	SoundGoal                        // Goal scored
	SoundWhistle                     // Kickoff
	SoundGameOver                    // Countdown expired
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundWallBounce: "wallBounce",
	SoundKick:       "kick",
	SoundGoal:       "goal",
	SoundWhistle:    "whistle",
	SoundGameOver:   "gameOver",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Player is the audio sink fed by the event dispatcher
type Player interface {
	Play(SoundType) bool
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio device unavailable")
	ErrAlreadyRunning   = errors.New("audio engine already running")
)
