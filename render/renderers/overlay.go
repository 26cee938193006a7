package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/engine"
	"github.com/lixenwraith/pitch-fighter/render"
)

// OverlayRenderer shows centered banners for goals, pause and full time
type OverlayRenderer struct{}

// NewOverlayRenderer creates an overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Banner returns the overlay lines for a snapshot, nil when nothing is shown
func Banner(snap *engine.Snapshot) []string {
	switch {
	case snap.Phase == engine.PhaseOver:
		return []string{snap.Outcome.Message(), "click or press r to play again"}
	case snap.Phase == engine.PhaseIdle:
		return []string{"KICKOFF"}
	case snap.Paused:
		return []string{"PAUSED", "p to resume"}
	case snap.GoalPending:
		if snap.LastScorer == component.TeamA {
			return []string{"GOAL! BLUE"}
		}
		return []string{"GOAL! RED"}
	}
	return nil
}

// IsVisible implements VisibilityToggle
func (o *OverlayRenderer) IsVisible(ctx render.RenderContext) bool {
	return Banner(ctx.Snap) != nil
}

// Render implements SystemRenderer
func (o *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	lines := Banner(ctx.Snap)
	style := tcell.StyleDefault.Background(render.RgbOverlayBg).Foreground(render.RgbOverlayText).Bold(true)

	y := ctx.PitchY + (ctx.PitchHeight-len(lines))/2
	for i, line := range lines {
		buf.DrawCentered(y+i, " "+line+" ", style)
	}
}
