package render

import (
	"github.com/gdamore/tcell/v2"
)

// Screen is the subset of tcell.Screen the buffer flushes into
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// RenderBuffer is a full-frame compositor; renderers draw into it, the sink flushes it once
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

var emptyCell = Cell{Rune: ' ', Style: tcell.StyleDefault.Background(RgbBackground)}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (width, height int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out-of-bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetFg replaces rune and foreground while keeping the existing background
func (b *RenderBuffer) SetFg(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Style = dst.Style.Foreground(fg)
}

// Get returns the cell at x,y, empty when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// FillRow paints a whole row with one style
func (b *RenderBuffer) FillRow(y int, style tcell.Style) {
	for x := 0; x < b.width; x++ {
		b.Set(x, y, ' ', style)
	}
}

// DrawText writes s starting at x,y and returns the column after the last rune
func (b *RenderBuffer) DrawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// DrawCentered writes s horizontally centered on row y
func (b *RenderBuffer) DrawCentered(y int, s string, style tcell.Style) {
	x := (b.width - len([]rune(s))) / 2
	b.DrawText(max(x, 0), y, s, style)
}

// Flush copies the buffer to the screen and presents it
func (b *RenderBuffer) Flush(s Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	s.Show()
}
