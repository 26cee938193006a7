package engine

import (
	"github.com/lixenwraith/pitch-fighter/component"
)

// EntitySnapshot is a read-only copy of a ball or player
type EntitySnapshot struct {
	ID         int            `msgpack:"id"`
	X          float64        `msgpack:"x"`
	Y          float64        `msgpack:"y"`
	Radius     float64        `msgpack:"r"`
	Team       component.Team `msgpack:"team"`
	Controlled bool           `msgpack:"ctl,omitempty"`
}

// Snapshot is the per-frame view handed to render sinks
// Sinks must not retain it across frames
type Snapshot struct {
	MatchID string `msgpack:"match"`
	Frame   uint64 `msgpack:"frame"`

	Width          float64 `msgpack:"w"`
	Height         float64 `msgpack:"h"`
	GoalWidth      float64 `msgpack:"goal_w"`
	GoalHalfHeight float64 `msgpack:"goal_hh"`

	Ball    EntitySnapshot   `msgpack:"ball"`
	Players []EntitySnapshot `msgpack:"players"`

	ScoreA        int            `msgpack:"score_a"`
	ScoreB        int            `msgpack:"score_b"`
	TimeRemaining int            `msgpack:"time"`
	Phase         Phase          `msgpack:"phase"`
	Paused        bool           `msgpack:"paused,omitempty"`
	GoalPending   bool           `msgpack:"goal,omitempty"`
	LastScorer    component.Team `msgpack:"scorer"`
	Outcome       Outcome        `msgpack:"outcome"`
	Muted         bool           `msgpack:"muted,omitempty"`
	Status        string         `msgpack:"status,omitempty"`
}

// Field returns the pitch geometry described by the snapshot
func (s *Snapshot) Field() component.Field {
	return component.Field{
		Width:          s.Width,
		Height:         s.Height,
		GoalWidth:      s.GoalWidth,
		GoalHalfHeight: s.GoalHalfHeight,
	}
}

// Snapshot copies the current match state
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		MatchID:        m.ID.String(),
		Frame:          m.frame,
		Width:          m.Field.Width,
		Height:         m.Field.Height,
		GoalWidth:      m.Field.GoalWidth,
		GoalHalfHeight: m.Field.GoalHalfHeight,
		Ball: EntitySnapshot{
			X:      m.Ball.Pos.X,
			Y:      m.Ball.Pos.Y,
			Radius: m.Ball.Radius,
		},
		Players:       make([]EntitySnapshot, len(m.Roster.Players)),
		ScoreA:        m.ScoreA,
		ScoreB:        m.ScoreB,
		TimeRemaining: m.TimeRemaining,
		Phase:         m.Phase,
		Paused:        m.Paused(),
		GoalPending:   m.GoalPending(),
		LastScorer:    m.LastScorer,
		Outcome:       m.Outcome(),
	}
	for i, p := range m.Roster.Players {
		s.Players[i] = EntitySnapshot{
			ID:         p.ID,
			X:          p.Pos.X,
			Y:          p.Pos.Y,
			Radius:     p.Radius,
			Team:       p.Team,
			Controlled: p.IsControlled(),
		}
	}
	return s
}
