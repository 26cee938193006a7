package component

import "github.com/lixenwraith/pitch-fighter/vmath"

// Pointer is the desired target of the controlled player in field units
// Inactive pointers leave the controlled player standing
type Pointer struct {
	Active bool
	Pos    vmath.Vec2
}
