package render

import "github.com/lixenwraith/pitch-fighter/engine"

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for per-frame enable/disable
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}

// Sink receives one snapshot per frame
type Sink interface {
	Render(engine.Snapshot) error
}

var (
	_ Sink = (*TerminalSink)(nil)
	_ Sink = (*FrameEncoder)(nil)
)
