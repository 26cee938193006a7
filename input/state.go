package input

import (
	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// State holds the pointer in field coordinates between steps
type State struct {
	pointer component.Pointer
}

// NewState returns an inactive pointer state
func NewState() *State {
	return &State{}
}

// Pointer returns the pointer polled once per step
func (s *State) Pointer() component.Pointer {
	return s.pointer
}

// Apply folds a pointer or nudge intent into the state
// origin seeds a keyboard nudge when no pointer is active, usually the controlled player
func (s *State) Apply(it Intent, origin vmath.Vec2) {
	switch it.Type {
	case IntentPointer:
		s.pointer.Active = it.Active
		// Row 0 is the HUD
		s.pointer.Pos = component.FromCell(it.Col, it.Row-parameter.HUDRows)
	case IntentNudge:
		if !s.pointer.Active {
			s.pointer.Pos = origin
			s.pointer.Active = true
		}
		s.pointer.Pos.X += float64(it.DX*parameter.PointerNudgeCells) * parameter.CellWidthUnits
		s.pointer.Pos.Y += float64(it.DY*parameter.PointerNudgeCells) * parameter.CellHeightUnits
	}
}

// Release deactivates the pointer
func (s *State) Release() {
	s.pointer.Active = false
}
