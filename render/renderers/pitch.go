package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/render"
)

// stripeWidth is the mowing pattern width in cells
const stripeWidth = 4

// PitchRenderer draws grass, the halfway line and both goal mouths
type PitchRenderer struct{}

// NewPitchRenderer creates a pitch renderer
func NewPitchRenderer() *PitchRenderer {
	return &PitchRenderer{}
}

// Render implements SystemRenderer
func (p *PitchRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snap
	light := tcell.StyleDefault.Background(render.RgbGrass)
	dark := tcell.StyleDefault.Background(render.RgbGrassDark)

	for row := ctx.PitchY; row < ctx.PitchY+ctx.PitchHeight; row++ {
		for col := ctx.PitchX; col < ctx.PitchX+ctx.PitchWidth; col++ {
			style := light
			if ((col-ctx.PitchX)/stripeWidth)%2 == 1 {
				style = dark
			}
			buf.Set(col, row, parameter.GrassChar, style)
		}
	}

	half, _ := ctx.ToScreen(snap.Width/2, 0)
	for row := ctx.PitchY; row < ctx.PitchY+ctx.PitchHeight; row++ {
		buf.SetFg(half, row, parameter.HalfLineChar, render.RgbLine)
	}

	field := snap.Field()
	top, bottom := field.GoalBand()
	_, rowTop := ctx.ToScreen(0, top)
	_, rowBottom := ctx.ToScreen(0, bottom)
	left := ctx.PitchX
	right := ctx.PitchX + ctx.PitchWidth - 1
	for row := rowTop; row <= rowBottom && row < ctx.PitchY+ctx.PitchHeight; row++ {
		buf.SetFg(left, row, parameter.GoalChar, render.RgbGoalMouth)
		buf.SetFg(right, row, parameter.GoalCharRight, render.RgbGoalMouth)
	}
}
