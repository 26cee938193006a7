package renderers

import (
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/render"
)

// EntityRenderer draws players, then the ball on top
type EntityRenderer struct{}

// NewEntityRenderer creates an entity renderer
func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{}
}

// Render implements SystemRenderer
func (e *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snap

	for _, p := range snap.Players {
		col, row := ctx.ToScreen(p.X, p.Y)
		glyph := parameter.PlayerChar
		if p.Controlled {
			glyph = parameter.ControlledChar
		}
		buf.SetFg(col, row, glyph, render.TeamColor(p.Team))
	}

	// The ball may sit past the goal line, outside the pitch but still on screen
	col, row := ctx.ToScreen(snap.Ball.X, snap.Ball.Y)
	buf.SetFg(col, row, parameter.BallChar, render.RgbBall)
}
