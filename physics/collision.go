package physics

import (
	"github.com/lixenwraith/pitch-fighter/component"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// KickProfile defines the contact response of a player against the ball
type KickProfile struct {
	Power  float64
	Margin float64 // Extra contact distance beyond summed radii
}

var (
	// KickControlled is the stronger kick of the pointer-driven player
	KickControlled = KickProfile{Power: parameter.KickPowerControlled, Margin: parameter.KickMargin}
	// KickAI is the kick of every AI player
	KickAI = KickProfile{Power: parameter.KickPowerAI, Margin: parameter.KickMargin}
)

// ProfileFor returns the kick profile for a player role
func ProfileFor(role component.Role) *KickProfile {
	switch role {
	case component.RoleControlled:
		return &KickControlled
	default:
		return &KickAI
	}
}

// Kick records one player-ball contact
type Kick struct {
	PlayerID int
	Team     component.Team
	Impulse  vmath.Vec2
}

// InContact reports whether a player touches the ball, compared squared
func InContact(p *component.Player, b *component.Ball, margin float64) bool {
	reach := p.Radius + b.Radius + margin
	return vmath.V2MagSq(vmath.V2Sub(b.Pos, p.Pos)) < reach*reach
}

// KickImpulse returns power along the unit vector from player to ball
// Coincident centers yield a zero impulse
func KickImpulse(p *component.Player, b *component.Ball, power float64) vmath.Vec2 {
	return vmath.V2Scale(vmath.Direction(p.Pos, b.Pos), power)
}

// ResolveKicks tests every player against the ball in roster order and applies kicks
// Kicks replace the ball velocity, so the last contact in iteration order decides the ball velocity
// when several players touch the ball in the same step
func ResolveKicks(players []*component.Player, b *component.Ball) []Kick {
	var kicks []Kick
	for _, p := range players {
		profile := ProfileFor(p.Role)
		if !InContact(p, b, profile.Margin) {
			continue
		}
		impulse := KickImpulse(p, b, profile.Power)
		SetImpulse(b, impulse)
		kicks = append(kicks, Kick{PlayerID: p.ID, Team: p.Team, Impulse: impulse})
	}
	return kicks
}
