package render

import (
	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/engine"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap *engine.Snapshot

	// Pitch origin on screen, the HUD sits above it
	PitchX int
	PitchY int

	// Pitch size in cells
	PitchWidth  int
	PitchHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext lays the snapshot's pitch out on a screen of the given size
func NewRenderContext(snap *engine.Snapshot, screenWidth, screenHeight int) RenderContext {
	field := snap.Field()
	return RenderContext{
		Snap:         snap,
		PitchX:       0,
		PitchY:       parameter.HUDRows,
		PitchWidth:   field.Cols(),
		PitchHeight:  field.Rows(),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// ToScreen projects field coordinates to a screen cell
func (c RenderContext) ToScreen(x, y float64) (col, row int) {
	col, row = component.ToCell(vmath.Vec2{X: x, Y: y})
	return col + c.PitchX, row + c.PitchY
}

// InPitch reports whether a screen cell lies on the pitch
func (c RenderContext) InPitch(col, row int) bool {
	return col >= c.PitchX && col < c.PitchX+c.PitchWidth &&
		row >= c.PitchY && row < c.PitchY+c.PitchHeight
}
