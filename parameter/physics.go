package parameter

// Ball
const (
	BallRadius = 6.0

	// BallFriction scales velocity componentwise once per step
	BallFriction = 0.97
)

// Kick impulse magnitudes, applied as velocity override on contact
const (
	KickPowerControlled = 7.0
	KickPowerAI         = 6.0

	// KickMargin extends the contact distance beyond the summed radii
	KickMargin = 0.0
)
