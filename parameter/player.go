package parameter

// Player Entity
const (
	PlayerRadius = 12.0
	PlayerSpeed  = 3.0

	// AISlowdown scales AI step length relative to PlayerSpeed
	AISlowdown = 0.8

	// AIDeadZone is the distance below which an AI player stops moving toward its target
	AIDeadZone = 5.0

	// ControlledDeadZone is the distance below which the controlled player ignores the pointer
	ControlledDeadZone = 10.0
)

// Roster sizes
const (
	RosterFull    = 5
	RosterClassic = 1
)

// FormationFull lists spawn anchors for the left team as fractions of field width and height
// Index 0 is the user-controlled striker, right team mirrors on X
var FormationFull = [RosterFull][2]float64{
	{0.225, 0.50},
	{0.06, 0.50},
	{0.16, 0.25},
	{0.16, 0.75},
	{0.34, 0.50},
}

// FormationClassic is the single-player spawn layout
var FormationClassic = [RosterClassic][2]float64{
	{0.225, 0.50},
}
