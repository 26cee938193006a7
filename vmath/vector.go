package vmath

import "math"

// Vec2 is a float64 2D vector in field units
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2Normalize returns the unit vector of v, zero-safe
// A zero-length input yields the zero vector instead of NaN components
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Direction returns the unit vector pointing from 'from' to 'to', zero when coincident
func Direction(from, to Vec2) Vec2 {
	return V2Normalize(V2Sub(to, from))
}

// StepToward returns the displacement moving 'from' toward 'to' by step units
// Returns zero when the target lies within deadZone, which suppresses jitter at the target
func StepToward(from, to Vec2, step, deadZone float64) Vec2 {
	delta := V2Sub(to, from)
	d := V2Mag(delta)
	if d <= deadZone || d == 0 {
		return Vec2{}
	}
	return Vec2{delta.X / d * step, delta.Y / d * step}
}

// ReflectAxisX returns velocity reflected off a vertical wall
func ReflectAxisX(v Vec2) Vec2 {
	return Vec2{-v.X, v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal wall
func ReflectAxisY(v Vec2) Vec2 {
	return Vec2{v.X, -v.Y}
}
