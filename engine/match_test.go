package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/event"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestMatch returns a running 800x600 match on a mock clock with kickoff events drained
func newTestMatch(t *testing.T, roster int, duration time.Duration) (*Match, *MockTimeProvider) {
	t.Helper()
	mock := NewMockTimeProvider(testStart)
	cfg := DefaultMatchConfig()
	cfg.RosterSize = roster
	if duration > 0 {
		cfg.Duration = duration
	}
	m, err := NewMatch(cfg, component.NewField(800, 600), NewPausableClock(mock), nil)
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	m.Start()
	m.Events()
	return m, mock
}

func countEvents(events []event.GameEvent, et event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

var idle = component.Pointer{}

// TestNewMatchIdle verifies a fresh match waits for Start
func TestNewMatchIdle(t *testing.T) {
	m, err := NewMatch(DefaultMatchConfig(), component.NewField(800, 600), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Phase != PhaseIdle {
		t.Errorf("Expected idle phase, got %s", m.Phase)
	}

	m.Step(idle)
	if m.Frame() != 0 {
		t.Errorf("Expected no steps while idle, got %d", m.Frame())
	}

	m.Start()
	if m.Phase != PhaseRunning {
		t.Errorf("Expected running phase, got %s", m.Phase)
	}
	if m.TimeRemaining != 120 {
		t.Errorf("Expected 120s on the clock, got %d", m.TimeRemaining)
	}
	if n := countEvents(m.Events(), event.EventWhistle); n != 1 {
		t.Errorf("Expected 1 kickoff whistle, got %d", n)
	}
}

// TestNewMatchRejectsRoster verifies unsupported rosters fail construction
func TestNewMatchRejectsRoster(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.RosterSize = 4
	if _, err := NewMatch(cfg, component.NewField(800, 600), nil, nil); err == nil {
		t.Error("Expected error for roster size 4")
	}
}

// TestNewMatchRejectsZeroGoalDelay verifies the celebration window cannot be removed
func TestNewMatchRejectsZeroGoalDelay(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.GoalResetDelay = 0
	if _, err := NewMatch(cfg, component.NewField(800, 600), nil, nil); err == nil {
		t.Error("Expected error for zero goal reset delay")
	}
}

// TestCornerBounceEmitsPerAxis verifies a corner hit emits one wall bounce per reflected axis
func TestCornerBounceEmitsPerAxis(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)
	m.Ball.Pos = vmath.Vec2{X: 8, Y: 8}
	m.Ball.Vel = vmath.Vec2{X: -5, Y: -5}

	m.Step(idle)
	if n := countEvents(m.Events(), event.EventWallBounce); n != 2 {
		t.Errorf("Expected 2 wall bounces, got %d", n)
	}
}

// TestGoalOnMinimumPitch verifies a ball resting just past the end line scores on the smallest pitch
func TestGoalOnMinimumPitch(t *testing.T) {
	cfg := DefaultMatchConfig()
	cfg.RosterSize = parameter.RosterClassic
	field := component.FieldFromCells(parameter.MinFieldCols, parameter.MinFieldRows)
	m, err := NewMatch(cfg, field, NewPausableClock(NewMockTimeProvider(testStart)), nil)
	if err != nil {
		t.Fatal(err)
	}
	m.Start()
	m.Ball.Pos = vmath.Vec2{X: field.Width - parameter.BallRadius + 1, Y: field.Height / 2}

	m.Step(idle)
	if m.ScoreA != 1 {
		t.Errorf("Expected blue to score, got %d-%d", m.ScoreA, m.ScoreB)
	}
}

// TestGoalScoresOnceUnderLock verifies a ball resting in the goal scores exactly once
func TestGoalScoresOnceUnderLock(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)
	m.Ball.Pos = vmath.Vec2{X: 790, Y: 300}

	var events []event.GameEvent
	for i := 0; i < 3; i++ {
		m.Step(idle)
		events = append(events, m.Events()...)
	}

	if m.ScoreA != 1 || m.ScoreB != 0 {
		t.Errorf("Expected score 1-0, got %d-%d", m.ScoreA, m.ScoreB)
	}
	if !m.GoalPending() {
		t.Error("Expected goal lock after scoring")
	}
	if n := countEvents(events, event.EventGoal); n != 1 {
		t.Errorf("Expected 1 goal event, got %d", n)
	}
	if m.LastScorer != component.TeamA {
		t.Errorf("Expected blue to have scored, got %s", m.LastScorer)
	}
}

// TestGoalLeftEndScoresForRed verifies the left goal credits TeamB
func TestGoalLeftEndScoresForRed(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)
	m.Ball.Pos = vmath.Vec2{X: 10, Y: 300}

	m.Step(idle)

	if m.ScoreA != 0 || m.ScoreB != 1 {
		t.Errorf("Expected score 0-1, got %d-%d", m.ScoreA, m.ScoreB)
	}
}

// TestGoalRequiresMouth verifies a ball past the goal line outside the mouth does not score
func TestGoalRequiresMouth(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)
	m.Ball.Pos = vmath.Vec2{X: 790, Y: 100}

	m.Step(idle)

	if m.ScoreA != 0 || m.ScoreB != 0 {
		t.Errorf("Expected no score, got %d-%d", m.ScoreA, m.ScoreB)
	}
	if m.GoalPending() {
		t.Error("Expected no goal lock")
	}
}

// TestGoalResetAfterDelay verifies the round resets once the deadline passes
func TestGoalResetAfterDelay(t *testing.T) {
	m, mock := newTestMatch(t, parameter.RosterClassic, 0)
	m.Ball.Pos = vmath.Vec2{X: 790, Y: 300}
	m.Step(idle)
	m.Events()

	mock.Advance(799 * time.Millisecond)
	m.Step(idle)
	if !m.GoalPending() {
		t.Fatal("Expected goal lock before the delay elapsed")
	}

	mock.Advance(1 * time.Millisecond)
	m.Step(idle)

	if m.GoalPending() {
		t.Error("Expected goal lock cleared after the delay")
	}
	if m.Ball.Pos != m.Field.Center() || m.Ball.Speed() != 0 {
		t.Errorf("Expected ball at rest on the kickoff spot, got %+v", *m.Ball)
	}
	if m.ScoreA != 1 {
		t.Errorf("Expected score kept through round reset, got %d", m.ScoreA)
	}
	if n := countEvents(m.Events(), event.EventWhistle); n != 1 {
		t.Errorf("Expected 1 whistle, got %d", n)
	}
}

// TestResetGameCancelsDeadline verifies a restart drops the pending round reset
func TestResetGameCancelsDeadline(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)
	m.Ball.Pos = vmath.Vec2{X: 790, Y: 300}
	m.Step(idle)
	m.TimeRemaining = 17

	m.ResetGame()

	if m.GoalPending() {
		t.Error("Expected pending reset cancelled")
	}
	if m.ScoreA != 0 || m.ScoreB != 0 {
		t.Errorf("Expected score 0-0, got %d-%d", m.ScoreA, m.ScoreB)
	}
	if m.TimeRemaining != 120 || m.Phase != PhaseRunning {
		t.Errorf("Expected 120s running, got %ds %s", m.TimeRemaining, m.Phase)
	}
}

// TestResetRoundIdempotent verifies two resets leave identical state
func TestResetRoundIdempotent(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterFull, 0)
	m.Ball.Pos = vmath.Vec2{X: 123, Y: 456}
	m.Ball.Vel = vmath.Vec2{X: 3, Y: 4}
	m.Roster.Players[3].Pos = vmath.Vec2{X: 50, Y: 50}
	m.ScoreB = 2
	m.TimeRemaining = 42

	m.ResetRound()
	ball := *m.Ball
	positions := make([]vmath.Vec2, len(m.Roster.Players))
	for i, p := range m.Roster.Players {
		positions[i] = p.Pos
	}

	m.ResetRound()

	if *m.Ball != ball {
		t.Errorf("Ball changed on second reset: %+v vs %+v", *m.Ball, ball)
	}
	for i, p := range m.Roster.Players {
		if p.Pos != positions[i] || p.Pos != p.Anchor {
			t.Errorf("Player %d not at anchor after reset: %+v", i, p.Pos)
		}
	}
	if m.ScoreB != 2 || m.TimeRemaining != 42 {
		t.Errorf("Expected score and timer untouched, got %d and %d", m.ScoreB, m.TimeRemaining)
	}
}

// TestTimerReachesZeroAndOver verifies the countdown ends exactly at zero in the same tick as Over
func TestTimerReachesZeroAndOver(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 3*time.Second)

	m.TickTimer()
	m.TickTimer()
	if m.TimeRemaining != 1 || m.Phase != PhaseRunning {
		t.Fatalf("Expected 1s running, got %ds %s", m.TimeRemaining, m.Phase)
	}

	m.TickTimer()
	if m.TimeRemaining != 0 {
		t.Errorf("Expected 0s, got %d", m.TimeRemaining)
	}
	if m.Phase != PhaseOver {
		t.Errorf("Expected over phase, got %s", m.Phase)
	}
	if n := countEvents(m.Events(), event.EventGameOver); n != 1 {
		t.Errorf("Expected 1 game over event, got %d", n)
	}

	m.TickTimer()
	if m.TimeRemaining != 0 {
		t.Errorf("Expected timer to stay at 0, got %d", m.TimeRemaining)
	}

	frame := m.Frame()
	m.Step(idle)
	if m.Frame() != frame {
		t.Error("Expected step suppressed once over")
	}
}

// TestDrawAtTimeUp verifies a level score resolves to a draw
func TestDrawAtTimeUp(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, time.Second)
	m.ScoreA, m.ScoreB = 2, 2

	m.TickTimer()

	if m.Phase != PhaseOver {
		t.Fatalf("Expected over phase, got %s", m.Phase)
	}
	if m.Outcome() != OutcomeDraw {
		t.Errorf("Expected draw, got %s", m.Outcome())
	}
	if msg := m.Outcome().Message(); msg != "DRAW" {
		t.Errorf("Expected DRAW, got %q", msg)
	}
}

// TestOutcomeMessages verifies winner banners
func TestOutcomeMessages(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)

	m.ScoreA, m.ScoreB = 3, 1
	if got := m.Outcome().Message(); got != "BLUE WINS" {
		t.Errorf("Expected BLUE WINS, got %q", got)
	}
	m.ScoreA, m.ScoreB = 0, 1
	if got := m.Outcome().Message(); got != "RED WINS" {
		t.Errorf("Expected RED WINS, got %q", got)
	}
}

// TestRestartOnlyWhenOver verifies the restart trigger is ignored during play
func TestRestartOnlyWhenOver(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, time.Second)
	m.ScoreA = 1

	if m.Restart() {
		t.Error("Expected restart ignored while running")
	}
	if m.ScoreA != 1 {
		t.Error("Expected score untouched by ignored restart")
	}

	m.TickTimer()
	if !m.Restart() {
		t.Fatal("Expected restart accepted once over")
	}
	if m.Phase != PhaseRunning || m.ScoreA != 0 || m.TimeRemaining != 1 {
		t.Errorf("Expected fresh running match, got %s %d %ds", m.Phase, m.ScoreA, m.TimeRemaining)
	}
}

// TestPauseFreezesPlay verifies pause stops steps, the countdown and the goal deadline
func TestPauseFreezesPlay(t *testing.T) {
	m, mock := newTestMatch(t, parameter.RosterClassic, 0)
	m.Ball.Pos = vmath.Vec2{X: 790, Y: 300}
	m.Step(idle)

	if !m.TogglePause() {
		t.Fatal("Expected paused after first toggle")
	}

	frame := m.Frame()
	m.Step(idle)
	m.TickTimer()
	if m.Frame() != frame {
		t.Error("Expected no step while paused")
	}
	if m.TimeRemaining != 120 {
		t.Errorf("Expected timer frozen at 120, got %d", m.TimeRemaining)
	}

	mock.Advance(2 * time.Second)
	if m.TogglePause() {
		t.Fatal("Expected resumed after second toggle")
	}
	m.Step(idle)
	if !m.GoalPending() {
		t.Error("Expected goal deadline to stay pending across the pause")
	}
}

// TestKickEmitsEvent verifies a controlled contact sets the ball moving and reports the kicker
func TestKickEmitsEvent(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)
	kicker := m.Roster.Controlled()
	m.Ball.Pos = vmath.Vec2{X: kicker.Pos.X + 15, Y: kicker.Pos.Y}

	m.Step(idle)

	if m.Ball.Vel != (vmath.Vec2{X: 7, Y: 0}) {
		t.Errorf("Expected velocity (7,0), got %+v", m.Ball.Vel)
	}
	events := m.Events()
	if countEvents(events, event.EventKick) != 1 {
		t.Fatalf("Expected 1 kick event, got %v", events)
	}
	for _, ev := range events {
		if ev.Type == event.EventKick && (ev.PlayerID != kicker.ID || ev.Team != component.TeamA) {
			t.Errorf("Expected kick by player %d of blue, got %+v", kicker.ID, ev)
		}
	}
}

// TestControlledFollowsPointer verifies the pointer drives the controlled player only
func TestControlledFollowsPointer(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)
	p := m.Roster.Controlled()
	start := p.Pos

	m.Step(component.Pointer{Active: true, Pos: vmath.Vec2{X: start.X, Y: start.Y + 100}})

	if p.Pos.X != start.X || p.Pos.Y != start.Y+parameter.PlayerSpeed {
		t.Errorf("Expected move of %v down, got %+v from %+v", parameter.PlayerSpeed, p.Pos, start)
	}
}

// TestResizeRescales verifies entities and goal geometry follow a resize
func TestResizeRescales(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterClassic, 0)

	m.Resize(component.NewField(400, 300))

	if m.Ball.Pos != (vmath.Vec2{X: 200, Y: 150}) {
		t.Errorf("Expected ball at (200,150), got %+v", m.Ball.Pos)
	}
	if m.Field.GoalWidth != 10 || m.Field.GoalHalfHeight != 45 {
		t.Errorf("Expected goal 10 wide and 45 half-high, got %f and %f", m.Field.GoalWidth, m.Field.GoalHalfHeight)
	}
	if p := m.Roster.Players[0]; p.Anchor != (vmath.Vec2{X: 90, Y: 150}) {
		t.Errorf("Expected anchor (90,150), got %+v", p.Anchor)
	}
}

// TestSwitchControlNearestBall verifies control moves toward the ball
func TestSwitchControlNearestBall(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterFull, 0)
	keeper := m.Roster.Team(component.TeamA)[1]
	m.Ball.Pos = vmath.Vec2{X: 30, Y: 300}

	if got := m.SwitchControl(); got != keeper {
		t.Errorf("Expected keeper to take control, got player %d", got.ID)
	}
}

// TestSnapshotCopiesState verifies the snapshot mirrors the match
func TestSnapshotCopiesState(t *testing.T) {
	m, _ := newTestMatch(t, parameter.RosterFull, 0)
	m.ScoreA = 2

	s := m.Snapshot()
	if s.MatchID != m.ID.String() {
		t.Errorf("Expected match id %s, got %s", m.ID, s.MatchID)
	}
	if len(s.Players) != 10 {
		t.Errorf("Expected 10 players, got %d", len(s.Players))
	}
	controlled := 0
	for _, p := range s.Players {
		if p.Controlled {
			controlled++
		}
	}
	if controlled != 1 {
		t.Errorf("Expected 1 controlled player, got %d", controlled)
	}
	if s.ScoreA != 2 || s.Phase != PhaseRunning || s.Field() != m.Field {
		t.Errorf("Snapshot mismatch: %+v", s)
	}

	// Mutating the snapshot leaves the match alone
	s.Players[0].X = -1
	if m.Roster.Players[0].Pos.X == -1 {
		t.Error("Snapshot shares player storage with the match")
	}
}
