package parameter

// Terminal projection: one cell spans this many field units
// Terminal cells are roughly twice as tall as wide
const (
	CellWidthUnits  = 8.0
	CellHeightUnits = 16.0
)

// Layout
const (
	// HUDRows is the number of rows above the pitch reserved for score and clock
	HUDRows = 1

	// MinFieldCols and MinFieldRows bound the smallest usable pitch
	MinFieldCols = 20
	MinFieldRows = 8

	// PointerNudgeCells is how far one arrow key press moves the keyboard pointer
	PointerNudgeCells = 2
)

// Glyphs
const (
	BallChar       = '●'
	PlayerChar     = '◉'
	ControlledChar = '◆'
	HalfLineChar   = '│'
	GoalChar       = '▐'
	GoalCharRight  = '▌'
	GrassChar      = ' '
)
