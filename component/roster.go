package component

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/vmath"
)

// ErrUnsupportedRoster is returned for team sizes without a formation
var ErrUnsupportedRoster = errors.New("unsupported roster size")

// Roster holds both teams in iteration order: TeamA by slot, then TeamB by slot
// Iteration order decides which contact wins when several players touch the ball in one step
type Roster struct {
	Players []*Player
	perTeam int
}

// formation returns spawn fractions for a team size
func formation(size int) ([]vmath.Vec2, error) {
	var src [][2]float64
	switch size {
	case parameter.RosterFull:
		src = parameter.FormationFull[:]
	case parameter.RosterClassic:
		src = parameter.FormationClassic[:]
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedRoster, size)
	}

	out := make([]vmath.Vec2, len(src))
	for i, f := range src {
		out[i] = vmath.Vec2{X: f[0], Y: f[1]}
	}
	return out, nil
}

// NewRoster builds two mirrored teams of the given size
// TeamA slot 0 is the controlled player, every other player runs the AI policy
func NewRoster(size int, field Field) (*Roster, error) {
	slots, err := formation(size)
	if err != nil {
		return nil, err
	}

	r := &Roster{
		Players: make([]*Player, 0, 2*size),
		perTeam: size,
	}
	id := 0
	for _, team := range []Team{TeamA, TeamB} {
		for slot, frac := range slots {
			role := RoleAI
			if team == TeamA && slot == 0 {
				role = RoleControlled
			}
			r.Players = append(r.Players, NewPlayer(id, team, slot, role, frac, field))
			id++
		}
	}
	return r, nil
}

// Size returns players per team
func (r *Roster) Size() int {
	return r.perTeam
}

// Team returns the players of one side in slot order
func (r *Roster) Team(t Team) []*Player {
	if t == TeamA {
		return r.Players[:r.perTeam]
	}
	return r.Players[r.perTeam:]
}

// Controlled returns the single pointer-driven player
func (r *Roster) Controlled() *Player {
	for _, p := range r.Players {
		if p.Role == RoleControlled {
			return p
		}
	}
	return nil
}

// SwitchControl hands the pointer to the TeamA player nearest target
// The previous controlled player reverts to AI so exactly one player stays controlled
func (r *Roster) SwitchControl(target vmath.Vec2) *Player {
	var best *Player
	bestDist := 0.0
	for _, p := range r.Team(TeamA) {
		d := vmath.Distance(p.Pos, target)
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	if best == nil {
		return nil
	}
	for _, p := range r.Players {
		p.Role = RoleAI
	}
	best.Role = RoleControlled
	return best
}

// ResetPositions snaps every player to its anchor
func (r *Roster) ResetPositions() {
	for _, p := range r.Players {
		p.ResetPosition()
	}
}

// Relayout applies a field resize to every player
func (r *Roster) Relayout(field, prev Field) {
	for _, p := range r.Players {
		p.Relayout(field, prev)
	}
}
