package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/event"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/physics"
	"github.com/lixenwraith/pitch-fighter/status"
)

// MatchConfig holds the rules fixed at match creation
type MatchConfig struct {
	Duration       time.Duration
	RosterSize     int
	GoalResetDelay time.Duration
}

// DefaultMatchConfig returns the standard 5v5 two-minute match
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Duration:       parameter.MatchDuration,
		RosterSize:     parameter.RosterFull,
		GoalResetDelay: parameter.GoalResetDelay,
	}
}

// Match is the aggregate owning ball, rosters, score and clock
// Only the loop goroutine mutates it; no internal locking
type Match struct {
	ID uuid.UUID

	Field  component.Field
	Ball   *component.Ball
	Roster *component.Roster

	ScoreA        int
	ScoreB        int
	TimeRemaining int // Whole seconds
	Phase         Phase
	LastScorer    component.Team

	// goalResetDeadline is zero when no round reset is pending
	goalResetDeadline time.Time

	cfg    MatchConfig
	clock  *PausableClock
	events *event.EventQueue
	frame  uint64

	frames  *atomic.Int64
	kicks   *atomic.Int64
	bounces *atomic.Int64
	goals   *atomic.Int64
}

// NewMatch builds an idle match on the given field
func NewMatch(cfg MatchConfig, field component.Field, clock *PausableClock, reg *status.Registry) (*Match, error) {
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("invalid match duration %v", cfg.Duration)
	}
	if cfg.GoalResetDelay <= 0 {
		return nil, fmt.Errorf("invalid goal reset delay %v", cfg.GoalResetDelay)
	}
	roster, err := component.NewRoster(cfg.RosterSize, field)
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	if clock == nil {
		clock = NewPausableClock(nil)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	return &Match{
		ID:            uuid.New(),
		Field:         field,
		Ball:          component.NewBall(field),
		Roster:        roster,
		TimeRemaining: durationSeconds(cfg.Duration),
		Phase:         PhaseIdle,
		cfg:           cfg,
		clock:         clock,
		events:        event.NewEventQueue(),
		frames:        reg.Ints.Get(status.KeyFrames),
		kicks:         reg.Ints.Get(status.KeyKicks),
		bounces:       reg.Ints.Get(status.KeyBounces),
		goals:         reg.Ints.Get(status.KeyGoals),
	}, nil
}

func durationSeconds(d time.Duration) int {
	return int(d / time.Second)
}

// Start moves an idle match into play
func (m *Match) Start() {
	if m.Phase != PhaseIdle {
		return
	}
	m.ResetGame()
}

// Step advances the simulation by one frame
// Order: movement, integration, boundary reflection, kicks, goal check
func (m *Match) Step(ptr component.Pointer) {
	if m.Phase != PhaseRunning || m.clock.IsPaused() {
		return
	}

	m.frame++
	m.frames.Add(1)

	if m.GoalPending() && !m.clock.Now().Before(m.goalResetDeadline) {
		m.ResetRound()
	}

	for _, p := range m.Roster.Players {
		d := physics.Move(p, m.Ball, m.Field, ptr)
		p.Pos.X += d.X
		p.Pos.Y += d.Y
		physics.ClampPlayer(p, m.Field)
	}

	physics.Integrate(m.Ball)

	for range physics.ReflectBoundary(m.Ball, m.Field) {
		m.bounces.Add(1)
		m.emit(event.GameEvent{Type: event.EventWallBounce})
	}

	for _, k := range physics.ResolveKicks(m.Roster.Players, m.Ball) {
		m.kicks.Add(1)
		m.emit(event.GameEvent{Type: event.EventKick, Team: k.Team, PlayerID: k.PlayerID})
	}

	m.checkGoal()
}

// checkGoal scores at most once per goal lock
func (m *Match) checkGoal() {
	if m.GoalPending() {
		return
	}
	b := m.Ball.Pos
	if !m.Field.InGoalBand(b.Y) {
		return
	}

	// Each team defends the goal at its own end
	var conceding component.Team
	switch {
	case b.X > m.Field.Width-m.Field.GoalWidth:
		conceding = component.TeamB
	case b.X < m.Field.GoalWidth:
		conceding = component.TeamA
	default:
		return
	}

	scorer := conceding.Opponent()
	if scorer == component.TeamA {
		m.ScoreA++
	} else {
		m.ScoreB++
	}

	m.LastScorer = scorer
	m.goalResetDeadline = m.clock.Now().Add(m.cfg.GoalResetDelay)
	m.goals.Add(1)
	m.emit(event.GameEvent{Type: event.EventGoal, Team: scorer})
	log.Printf("match %s: goal %s past %s, score %d-%d", m.ID, scorer, conceding, m.ScoreA, m.ScoreB)
}

// GoalPending reports whether a round reset is scheduled
func (m *Match) GoalPending() bool {
	return !m.goalResetDeadline.IsZero()
}

// ResetRound returns ball and players to kickoff and clears the goal lock
// Score and timer are untouched
func (m *Match) ResetRound() {
	m.Ball.Reset(m.Field)
	m.Roster.ResetPositions()
	m.goalResetDeadline = time.Time{}
	m.emit(event.GameEvent{Type: event.EventWhistle})
}

// ResetGame zeroes scores, restarts the countdown and kicks off
// Any pending round reset is cancelled
func (m *Match) ResetGame() {
	m.ScoreA, m.ScoreB = 0, 0
	m.TimeRemaining = durationSeconds(m.cfg.Duration)
	m.Phase = PhaseRunning
	m.clock.Resume()
	m.ResetRound()
	log.Printf("match %s: kickoff, %ds on the clock", m.ID, m.TimeRemaining)
}

// Restart handles the restart trigger, only effective once the match is over
func (m *Match) Restart() bool {
	if m.Phase != PhaseOver {
		return false
	}
	m.ResetGame()
	return true
}

// TickTimer consumes one second of match time
func (m *Match) TickTimer() {
	if m.Phase != PhaseRunning || m.clock.IsPaused() {
		return
	}
	m.TimeRemaining--
	if m.TimeRemaining > 0 {
		return
	}
	m.TimeRemaining = 0
	m.Phase = PhaseOver
	m.emit(event.GameEvent{Type: event.EventGameOver})
	log.Printf("match %s: full time %d-%d, %s", m.ID, m.ScoreA, m.ScoreB, m.Outcome())
}

// Outcome compares scores
func (m *Match) Outcome() Outcome {
	switch {
	case m.ScoreA > m.ScoreB:
		return OutcomeTeamAWins
	case m.ScoreB > m.ScoreA:
		return OutcomeTeamBWins
	default:
		return OutcomeDraw
	}
}

// TogglePause freezes or resumes both simulation and countdown, returns the new paused state
func (m *Match) TogglePause() bool {
	if m.Phase != PhaseRunning {
		return m.clock.IsPaused()
	}
	if m.clock.IsPaused() {
		m.clock.Resume()
		return false
	}
	m.clock.Pause()
	return true
}

// Paused reports whether play is frozen
func (m *Match) Paused() bool {
	return m.clock.IsPaused()
}

// SwitchControl gives the pointer to the TeamA player nearest the ball
func (m *Match) SwitchControl() *component.Player {
	return m.Roster.SwitchControl(m.Ball.Pos)
}

// Resize rescales the field and every entity proportionally
func (m *Match) Resize(field component.Field) {
	prev := m.Field
	if prev == field {
		return
	}
	m.Field = field
	m.Ball.Pos = field.Rescale(m.Ball.Pos, prev)
	m.Roster.Relayout(field, prev)
}

// Frame returns the number of simulated steps
func (m *Match) Frame() uint64 {
	return m.frame
}

// Events drains pending game events in emission order
func (m *Match) Events() []event.GameEvent {
	return m.events.Consume()
}

func (m *Match) emit(ev event.GameEvent) {
	ev.Frame = m.frame
	m.events.Push(ev)
}
