package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// TestTranslateKeys verifies the default key bindings
func TestTranslateKeys(t *testing.T) {
	tr := NewTranslator(nil)

	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRestart},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentPause},
		{tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentMute},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), IntentSwitch},
	}

	for _, tt := range tests {
		it, ok := tr.Translate(tt.ev)
		if !ok {
			t.Errorf("Key %v: expected intent %s, got none", tt.ev.Name(), tt.want)
			continue
		}
		if it.Type != tt.want {
			t.Errorf("Key %v: expected %s, got %s", tt.ev.Name(), tt.want, it.Type)
		}
	}

	if _, ok := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); ok {
		t.Error("Expected unbound key to be ignored")
	}
}

// TestTranslateVolumeKeys verifies + and - carry the volume direction
func TestTranslateVolumeKeys(t *testing.T) {
	tr := NewTranslator(nil)

	for r, want := range map[rune]int{'+': 1, '=': 1, '-': -1} {
		it, ok := tr.Translate(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		if !ok || it.Type != IntentVolume {
			t.Errorf("Key %q: expected volume intent, got %s", r, it.Type)
			continue
		}
		if it.DX != want {
			t.Errorf("Key %q: expected direction %d, got %d", r, want, it.DX)
		}
	}
}

// TestTranslateArrowNudge verifies arrow keys carry a direction
func TestTranslateArrowNudge(t *testing.T) {
	tr := NewTranslator(nil)
	it, ok := tr.Translate(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !ok || it.Type != IntentNudge {
		t.Fatalf("Expected nudge intent, got %+v", it)
	}
	if it.DX != -1 || it.DY != 0 {
		t.Errorf("Expected direction (-1,0), got (%d,%d)", it.DX, it.DY)
	}
}

// TestTranslateMouseEdges verifies press, drag and release reporting
func TestTranslateMouseEdges(t *testing.T) {
	tr := NewTranslator(nil)

	// Hover is ignored
	if _, ok := tr.Translate(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("Expected hover without button to be ignored")
	}

	press, ok := tr.Translate(tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone))
	if !ok || !press.Active || !press.Pressed {
		t.Errorf("Expected active pressed pointer, got %+v", press)
	}
	if press.Col != 10 || press.Row != 4 {
		t.Errorf("Expected cell (10,4), got (%d,%d)", press.Col, press.Row)
	}

	drag, _ := tr.Translate(tcell.NewEventMouse(12, 4, tcell.Button1, tcell.ModNone))
	if !drag.Active || drag.Pressed {
		t.Errorf("Expected active drag without press edge, got %+v", drag)
	}

	release, ok := tr.Translate(tcell.NewEventMouse(12, 4, tcell.ButtonNone, tcell.ModNone))
	if !ok || release.Active {
		t.Errorf("Expected inactive release, got %+v", release)
	}

	if !press.IsInteraction() || drag.IsInteraction() || release.IsInteraction() {
		t.Error("Only the press should count as an interaction")
	}
}

// TestTranslateResize verifies resize events carry the new size
func TestTranslateResize(t *testing.T) {
	tr := NewTranslator(nil)
	it, ok := tr.Translate(tcell.NewEventResize(100, 40))
	if !ok || it.Type != IntentResize {
		t.Fatalf("Expected resize intent, got %+v", it)
	}
	if it.Width != 100 || it.Height != 40 {
		t.Errorf("Expected 100x40, got %dx%d", it.Width, it.Height)
	}
	if it.IsInteraction() {
		t.Error("Resize should not count as an interaction")
	}
}

// TestStatePointerSkipsHUD verifies screen rows are shifted past the HUD
func TestStatePointerSkipsHUD(t *testing.T) {
	s := NewState()
	s.Apply(Intent{Type: IntentPointer, Col: 3, Row: parameter.HUDRows, Active: true}, vmath.Vec2{})

	p := s.Pointer()
	if !p.Active {
		t.Fatal("Expected active pointer")
	}
	want := vmath.Vec2{X: 3.5 * parameter.CellWidthUnits, Y: 0.5 * parameter.CellHeightUnits}
	if p.Pos != want {
		t.Errorf("Expected %+v, got %+v", want, p.Pos)
	}

	s.Apply(Intent{Type: IntentPointer, Col: 3, Row: 1, Active: false}, vmath.Vec2{})
	if s.Pointer().Active {
		t.Error("Expected pointer inactive after release")
	}
}

// TestStateNudgeFromOrigin verifies keyboard nudges start at the origin
func TestStateNudgeFromOrigin(t *testing.T) {
	s := NewState()
	origin := vmath.Vec2{X: 100, Y: 100}

	s.Apply(Intent{Type: IntentNudge, DX: 1}, origin)
	p := s.Pointer()
	wantX := 100 + parameter.PointerNudgeCells*parameter.CellWidthUnits
	if !p.Active || p.Pos.X != wantX || p.Pos.Y != 100 {
		t.Errorf("Expected active pointer at (%f,100), got %+v", wantX, p)
	}

	// Second nudge continues from the pointer, not the origin
	s.Apply(Intent{Type: IntentNudge, DY: 1}, vmath.Vec2{})
	if got := s.Pointer().Pos; got.X != wantX || got.Y != 100+parameter.PointerNudgeCells*parameter.CellHeightUnits {
		t.Errorf("Expected nudge to accumulate, got %+v", got)
	}

	s.Release()
	if s.Pointer().Active {
		t.Error("Expected pointer inactive after Release")
	}
}

type scriptedSource struct {
	events []tcell.Event
}

func (s *scriptedSource) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

// TestPollClosesOnNil verifies the poller forwards intents and closes on source shutdown
func TestPollClosesOnNil(t *testing.T) {
	src := &scriptedSource{events: []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone),
		tcell.NewEventResize(80, 24),
	}}
	out := make(chan Intent, 8)

	Poll(src, NewTranslator(nil), out, nil)

	var got []IntentType
	for it := range out {
		got = append(got, it.Type)
	}
	if len(got) != 2 || got[0] != IntentPause || got[1] != IntentResize {
		t.Errorf("Expected [pause resize], got %v", got)
	}
}
