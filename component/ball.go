package component

import (
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// Ball is the single ball on the pitch
type Ball struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}

// NewBall creates a ball resting on the kickoff spot
func NewBall(field Field) *Ball {
	b := &Ball{Radius: parameter.BallRadius}
	b.Reset(field)
	return b
}

// Reset re-centers the ball with zero velocity
func (b *Ball) Reset(field Field) {
	b.Pos = field.Center()
	b.Vel = vmath.Vec2{}
}

// Speed returns current velocity magnitude
func (b *Ball) Speed() float64 {
	return vmath.V2Mag(b.Vel)
}
