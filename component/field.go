package component

import (
	"math"

	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// Field is the pitch geometry in field units
// Goal dimensions are derived from width and height so a resize keeps proportions
type Field struct {
	Width          float64
	Height         float64
	GoalWidth      float64 // Goal-line offset from each end
	GoalHalfHeight float64 // Half the goal-mouth height
}

// NewField derives goal geometry proportionally from the given dimensions
// The goal is never shallower than the ball radius, otherwise a slow ball could rest
// past the end line without crossing the goal line
func NewField(width, height float64) Field {
	return Field{
		Width:          width,
		Height:         height,
		GoalWidth:      max(width*parameter.GoalWidthRatio, parameter.BallRadius),
		GoalHalfHeight: height * parameter.GoalHalfHeightRatio,
	}
}

// FieldFromCells sizes the field to a terminal grid of cols x rows cells
func FieldFromCells(cols, rows int) Field {
	cols = max(cols, parameter.MinFieldCols)
	rows = max(rows, parameter.MinFieldRows)
	return NewField(float64(cols)*parameter.CellWidthUnits, float64(rows)*parameter.CellHeightUnits)
}

// Center returns the kickoff spot
func (f Field) Center() vmath.Vec2 {
	return vmath.Vec2{X: f.Width / 2, Y: f.Height / 2}
}

// HalfLine returns the X coordinate of the halfway line
func (f Field) HalfLine() float64 {
	return f.Width / 2
}

// GoalBand returns the vertical extent of the goal mouth
func (f Field) GoalBand() (top, bottom float64) {
	mid := f.Height / 2
	return mid - f.GoalHalfHeight, mid + f.GoalHalfHeight
}

// InGoalBand reports whether y lies within the goal mouth, inclusive
func (f Field) InGoalBand(y float64) bool {
	top, bottom := f.GoalBand()
	return y >= top && y <= bottom
}

// OwnHalf reports whether x lies in the half the team defends
func (f Field) OwnHalf(t Team, x float64) bool {
	if t == TeamA {
		return x < f.HalfLine()
	}
	return x > f.HalfLine()
}

// DefensiveAnchor returns the team's quarter-line point, vertically centered
func (f Field) DefensiveAnchor(t Team) vmath.Vec2 {
	x := f.Width * parameter.QuarterLineRatio
	if t == TeamB {
		x = f.Width - x
	}
	return vmath.Vec2{X: x, Y: f.Height / 2}
}

// At converts a fractional formation position for the given team into field units
// TeamB positions are mirrored across the halfway line
func (f Field) At(t Team, frac vmath.Vec2) vmath.Vec2 {
	fx := frac.X
	if t == TeamB {
		fx = 1 - fx
	}
	return vmath.Vec2{X: fx * f.Width, Y: frac.Y * f.Height}
}

// Rescale maps a point from a previous field geometry into this one proportionally
func (f Field) Rescale(p vmath.Vec2, from Field) vmath.Vec2 {
	if from.Width == 0 || from.Height == 0 {
		return p
	}
	return vmath.Vec2{
		X: p.X / from.Width * f.Width,
		Y: p.Y / from.Height * f.Height,
	}
}

// Cols returns the terminal width of the field in cells
func (f Field) Cols() int {
	return int(math.Round(f.Width / parameter.CellWidthUnits))
}

// Rows returns the terminal height of the field in cells
func (f Field) Rows() int {
	return int(math.Round(f.Height / parameter.CellHeightUnits))
}

// ToCell projects a field point onto the terminal grid, unclamped
func ToCell(p vmath.Vec2) (col, row int) {
	return int(math.Floor(p.X / parameter.CellWidthUnits)), int(math.Floor(p.Y / parameter.CellHeightUnits))
}

// FromCell returns the field point at the center of a terminal cell
func FromCell(col, row int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(col) + 0.5) * parameter.CellWidthUnits,
		Y: (float64(row) + 0.5) * parameter.CellHeightUnits,
	}
}
