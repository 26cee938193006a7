package engine

// Phase is the match lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome is the final result of a match
type Outcome uint8

const (
	OutcomeDraw Outcome = iota
	OutcomeTeamAWins
	OutcomeTeamBWins
)

// Message returns the banner shown when the match is over
func (o Outcome) Message() string {
	switch o {
	case OutcomeTeamAWins:
		return "BLUE WINS"
	case OutcomeTeamBWins:
		return "RED WINS"
	default:
		return "DRAW"
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeTeamAWins:
		return "teamA"
	case OutcomeTeamBWins:
		return "teamB"
	default:
		return "draw"
	}
}
