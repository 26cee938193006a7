package physics

import (
	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// AITarget returns where an AI player heads: the ball while it is in the player's own half,
// otherwise the team's quarter-line anchor
func AITarget(p *component.Player, b *component.Ball, field component.Field) vmath.Vec2 {
	if field.OwnHalf(p.Team, b.Pos.X) {
		return b.Pos
	}
	return field.DefensiveAnchor(p.Team)
}

// AIMove returns the AI displacement for one step, pure function of current state
func AIMove(p *component.Player, b *component.Ball, field component.Field) vmath.Vec2 {
	target := AITarget(p, b, field)
	return vmath.StepToward(p.Pos, target, p.Speed*parameter.AISlowdown, parameter.AIDeadZone)
}

// ControlledMove returns the pointer-driven displacement for one step
func ControlledMove(p *component.Player, ptr component.Pointer) vmath.Vec2 {
	if !ptr.Active {
		return vmath.Vec2{}
	}
	return vmath.StepToward(p.Pos, ptr.Pos, p.Speed, parameter.ControlledDeadZone)
}

// Move selects the movement policy by role and returns the displacement
func Move(p *component.Player, b *component.Ball, field component.Field, ptr component.Pointer) vmath.Vec2 {
	switch p.Role {
	case component.RoleControlled:
		return ControlledMove(p, ptr)
	case component.RoleAI:
		return AIMove(p, b, field)
	default:
		return vmath.Vec2{}
	}
}

// ClampPlayer keeps a player's center inside the pitch
func ClampPlayer(p *component.Player, field component.Field) {
	p.Pos.X = vmath.Clamp(p.Pos.X, p.Radius, field.Width-p.Radius)
	p.Pos.Y = vmath.Clamp(p.Pos.Y, p.Radius, field.Height-p.Radius)
}
