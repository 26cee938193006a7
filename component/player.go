package component

import (
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// Player is a circular agent with a fixed spawn anchor
// Players carry no momentum; position changes only through per-step displacement
type Player struct {
	ID        int // Spawn order across the whole roster
	Team      Team
	Slot      int // Formation index within the team
	Role      Role
	Formation vmath.Vec2 // Anchor as fraction of field size, before team mirroring
	Anchor    vmath.Vec2
	Pos       vmath.Vec2
	Radius    float64
	Speed     float64
}

// NewPlayer places a player on its formation anchor
func NewPlayer(id int, team Team, slot int, role Role, formation vmath.Vec2, field Field) *Player {
	p := &Player{
		ID:        id,
		Team:      team,
		Slot:      slot,
		Role:      role,
		Formation: formation,
		Radius:    parameter.PlayerRadius,
		Speed:     parameter.PlayerSpeed,
	}
	p.Anchor = field.At(team, formation)
	p.Pos = p.Anchor
	return p
}

// ResetPosition snaps the player back to its spawn anchor
func (p *Player) ResetPosition() {
	p.Pos = p.Anchor
}

// Relayout recomputes the anchor for a new field and rescales the current position
func (p *Player) Relayout(field, prev Field) {
	p.Anchor = field.At(p.Team, p.Formation)
	p.Pos = field.Rescale(p.Pos, prev)
}

// IsControlled reports whether the pointer drives this player
func (p *Player) IsControlled() bool {
	return p.Role == RoleControlled
}
