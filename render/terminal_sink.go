package render

import (
	"github.com/lixenwraith/pitch-fighter/engine"
)

// TerminalScreen is the subset of tcell.Screen the sink draws on
type TerminalScreen interface {
	Screen
	Size() (width, height int)
	Sync()
}

// TerminalSink renders snapshots onto a terminal screen
type TerminalSink struct {
	screen TerminalScreen
	orch   *RenderOrchestrator
	width  int
	height int
}

// NewTerminalSink binds an orchestrator to a screen
func NewTerminalSink(screen TerminalScreen, orch *RenderOrchestrator) *TerminalSink {
	w, h := screen.Size()
	orch.Resize(w, h)
	return &TerminalSink{
		screen: screen,
		orch:   orch,
		width:  w,
		height: h,
	}
}

// Render composes and presents one frame
func (s *TerminalSink) Render(snap engine.Snapshot) error {
	w, h := s.screen.Size()
	if w != s.width || h != s.height {
		s.width, s.height = w, h
		s.orch.Resize(w, h)
		s.screen.Sync()
	}

	ctx := NewRenderContext(&snap, w, h)
	s.orch.RenderFrame(ctx)
	s.orch.Buffer().Flush(s.screen)
	return nil
}
