package parameter

import "time"

// Field proportions, all relative to current field dimensions
const (
	// GoalWidthRatio is the goal-line offset from each end as a fraction of width
	GoalWidthRatio = 0.025

	// GoalHalfHeightRatio is half the goal-mouth height as a fraction of height
	GoalHalfHeightRatio = 0.15

	// QuarterLineRatio is the defensive anchor line as a fraction of width from own end
	QuarterLineRatio = 0.25
)

// Match rules
const (
	// MatchDuration is the countdown length of a full match
	MatchDuration = 120 * time.Second

	// GoalResetDelay is the wall-clock celebration window between goal and round reset
	GoalResetDelay = 800 * time.Millisecond
)
