package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pitch-fighter/component"
)

// Pitch
var (
	RgbBackground = tcell.NewRGBColor(16, 18, 16)   // Outside the pitch
	RgbGrass      = tcell.NewRGBColor(11, 102, 35)  // Pitch green
	RgbGrassDark  = tcell.NewRGBColor(9, 88, 30)    // Mowing stripe
	RgbLine       = tcell.NewRGBColor(255, 255, 255) // Halfway line
	RgbGoalMouth  = tcell.NewRGBColor(230, 230, 230) // Goal posts and net
)

// Entities
var (
	RgbTeamA      = tcell.NewRGBColor(30, 144, 255) // Blue
	RgbTeamB      = tcell.NewRGBColor(255, 59, 59)  // Red
	RgbBall       = tcell.NewRGBColor(255, 255, 255)
	RgbControlled = tcell.NewRGBColor(255, 215, 0) // Gold marker on the pointer-driven player
)

// HUD and overlays
var (
	RgbHUDBg        = tcell.NewRGBColor(24, 26, 34)
	RgbHUDText      = tcell.NewRGBColor(220, 220, 220)
	RgbClockLow     = tcell.NewRGBColor(255, 165, 0) // Last ten seconds
	RgbOverlayBg    = tcell.NewRGBColor(0, 0, 0)
	RgbOverlayText  = tcell.NewRGBColor(255, 255, 255)
	RgbAudioMuted   = tcell.NewRGBColor(200, 50, 50)
	RgbAudioUnmuted = tcell.NewRGBColor(50, 160, 50)
	RgbStatusText   = tcell.NewRGBColor(140, 140, 140)
)

// TeamColor returns the kit color of a team
func TeamColor(t component.Team) tcell.Color {
	if t == component.TeamB {
		return RgbTeamB
	}
	return RgbTeamA
}
