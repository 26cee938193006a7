package component

// Team identifies a side of the pitch
// TeamA defends the left goal and attacks right, TeamB mirrors it
type Team uint8

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	switch t {
	case TeamA:
		return "blue"
	case TeamB:
		return "red"
	default:
		return "unknown"
	}
}

// Opponent returns the other team
func (t Team) Opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// Role selects the movement policy of a player
// A player is driven either by the pointer or by the AI policy, never both
type Role uint8

const (
	RoleAI Role = iota
	RoleControlled
)

func (r Role) String() string {
	switch r {
	case RoleAI:
		return "ai"
	case RoleControlled:
		return "controlled"
	default:
		return "unknown"
	}
}
