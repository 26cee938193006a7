package physics

import (
	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// Integrate advances the ball one step: p = p + v, then v = v * friction
// Friction is applied after the position update so a fresh kick moves at full power for one step
func Integrate(b *component.Ball) {
	b.Pos = vmath.V2Add(b.Pos, b.Vel)
	b.Vel = vmath.V2Scale(b.Vel, parameter.BallFriction)
}

// SetImpulse overrides velocity, the kicker dictates direction
func SetImpulse(b *component.Ball, impulse vmath.Vec2) {
	b.Vel = impulse
}

// ReflectBoundary clamps the ball inside the pitch and mirrors velocity on the crossed axis
// Top and bottom always reflect; the end lines reflect only outside the goal mouth so the ball
// can travel into the goal. Returns the number of axes reflected, 2 for a corner hit
func ReflectBoundary(b *component.Ball, field component.Field) int {
	n := 0
	if reflectEnds(b, field) {
		n++
	}
	if reflectSides(b, field) {
		n++
	}
	return n
}

// reflectEnds handles the left and right end lines
func reflectEnds(b *component.Ball, field component.Field) bool {
	if field.InGoalBand(b.Pos.Y) {
		return false
	}
	minX, maxX := b.Radius, field.Width-b.Radius
	if b.Pos.X < minX {
		b.Pos.X = minX
		b.Vel = vmath.ReflectAxisX(b.Vel)
		return true
	}
	if b.Pos.X > maxX {
		b.Pos.X = maxX
		b.Vel = vmath.ReflectAxisX(b.Vel)
		return true
	}
	return false
}

// reflectSides handles the top and bottom touchlines
func reflectSides(b *component.Ball, field component.Field) bool {
	minY, maxY := b.Radius, field.Height-b.Radius
	if b.Pos.Y < minY {
		b.Pos.Y = minY
		b.Vel = vmath.ReflectAxisY(b.Vel)
		return true
	}
	if b.Pos.Y > maxY {
		b.Pos.Y = maxY
		b.Vel = vmath.ReflectAxisY(b.Vel)
		return true
	}
	return false
}
