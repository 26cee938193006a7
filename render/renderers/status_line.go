package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitch-fighter/render"
)

// StatusLineRenderer prints debug counters on the last screen row
type StatusLineRenderer struct{}

// NewStatusLineRenderer creates a status line renderer
func NewStatusLineRenderer() *StatusLineRenderer {
	return &StatusLineRenderer{}
}

// IsVisible implements VisibilityToggle
func (s *StatusLineRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snap.Status != ""
}

// Render implements SystemRenderer
func (s *StatusLineRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.ScreenHeight - 1
	style := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbStatusText)
	buf.FillRow(y, style)
	buf.DrawText(0, y, ctx.Snap.Status, style)
}
