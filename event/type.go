package event

import "github.com/lixenwraith/pitch-fighter/component"

// EventType represents the type of game event
type EventType int

const (
	// EventWallBounce signals the ball reflected off a touchline or end line
	// Trigger: Step after boundary reflection | Consumer: audio
	EventWallBounce EventType = iota

	// EventKick signals a player-ball contact applied an impulse
	// Trigger: Step kick resolution | Consumer: audio | Team, PlayerID set
	EventKick

	// EventGoal signals a goal was scored and the round reset is pending
	// Trigger: Step goal check | Consumer: audio, render | Team is the scoring side
	EventGoal

	// EventWhistle signals a kickoff after a round or game reset
	// Trigger: ResetRound, ResetGame | Consumer: audio
	EventWhistle

	// EventGameOver signals the countdown reached zero
	// Trigger: timer tick | Consumer: audio, render
	EventGameOver
)

var eventNames = map[EventType]string{
	EventWallBounce: "wallBounce",
	EventKick:       "kick",
	EventGoal:       "goal",
	EventWhistle:    "whistle",
	EventGameOver:   "gameOver",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a discrete notification emitted by the simulation
type GameEvent struct {
	Type     EventType
	Team     component.Team
	PlayerID int
	Frame    uint64
}
