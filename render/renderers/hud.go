package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/render"
)

// lowClockSeconds switches the clock to the warning color
const lowClockSeconds = 10

// HUDRenderer draws score, clock and the audio indicator above the pitch
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// FormatClock renders whole seconds as m:ss
func FormatClock(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Render implements SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snap
	base := tcell.StyleDefault.Background(render.RgbHUDBg).Foreground(render.RgbHUDText)
	y := 0
	buf.FillRow(y, base)

	x := 1
	x = buf.DrawText(x, y, "BLUE ", base.Foreground(render.TeamColor(component.TeamA)).Bold(true))
	x = buf.DrawText(x, y, fmt.Sprintf("%d - %d", snap.ScoreA, snap.ScoreB), base.Bold(true))
	buf.DrawText(x, y, " RED", base.Foreground(render.TeamColor(component.TeamB)).Bold(true))

	clockStyle := base
	if snap.TimeRemaining <= lowClockSeconds {
		clockStyle = clockStyle.Foreground(render.RgbClockLow)
	}
	buf.DrawCentered(y, FormatClock(snap.TimeRemaining), clockStyle)

	label, bg := " SOUND ", render.RgbAudioUnmuted
	if snap.Muted {
		label, bg = " MUTED ", render.RgbAudioMuted
	}
	w, _ := buf.Bounds()
	buf.DrawText(w-len(label), y, label, base.Background(bg).Foreground(tcell.ColorBlack))
}
