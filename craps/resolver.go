// Package craps resolves plays of the pass-line game: a come-out roll
// followed, when needed, by a point phase.
package craps

import (
	"fmt"

	"crapsim/models"
)

// Roller supplies dice sums
type Roller interface {
	Roll() int
}

// RollerFunc adapts a plain function to Roller
type RollerFunc func() int

func (f RollerFunc) Roll() int {
	return f()
}

// Phase represents the state of a play
type Phase int

const (
	PhaseComeOut Phase = iota
	PhasePoint
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseComeOut:
		return "come_out"
	case PhasePoint:
		return "point"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const sevenOut = 7

// IsNatural reports whether a come-out sum wins immediately
func IsNatural(sum int) bool {
	return sum == 7 || sum == 11
}

// IsCraps reports whether a come-out sum loses immediately
func IsCraps(sum int) bool {
	return sum == 2 || sum == 3 || sum == 12
}

// Game tracks a single play through its phases
type Game struct {
	phase Phase
	point int
	rolls int
}

// NewGame creates a play waiting for its come-out roll
func NewGame() *Game {
	return &Game{phase: PhaseComeOut}
}

// Phase returns the current state
func (g *Game) Phase() Phase {
	return g.phase
}

// Point returns the established point, or 0 before one is set
func (g *Game) Point() int {
	return g.point
}

// Done reports whether the play has been decided
func (g *Game) Done() bool {
	return g.phase == PhaseWon || g.phase == PhaseLost
}

// Apply feeds one rolled sum into the state machine and returns the new phase.
// Rolls after the play is decided are ignored.
func (g *Game) Apply(sum int) Phase {
	switch g.phase {
	case PhaseComeOut:
		g.rolls++
		switch {
		case IsNatural(sum):
			g.phase = PhaseWon
		case IsCraps(sum):
			g.phase = PhaseLost
		default:
			g.point = sum
			g.phase = PhasePoint
		}
	case PhasePoint:
		g.rolls++
		switch sum {
		case sevenOut:
			g.phase = PhaseLost
		case g.point:
			g.phase = PhaseWon
		}
	}
	return g.phase
}

// Result summarizes the play. It is only meaningful once Done is true.
func (g *Game) Result() models.PlayResult {
	return models.PlayResult{
		Won:   g.phase == PhaseWon,
		Point: g.point,
		Rolls: g.rolls,
	}
}

// Resolve rolls until the play is decided and returns its result.
//
// The point phase has no roll limit. It ends with probability 1 because the
// point itself was just rolled, so it has a non-zero chance on every roll.
func Resolve(r Roller) models.PlayResult {
	g := NewGame()
	for !g.Done() {
		g.Apply(r.Roll())
	}
	return g.Result()
}

// ExactWinProbability computes the win probability of a play under the
// given per-sum probabilities:
//
//	p(7) + p(11) + sum over points n of p(n) * p(n) / (p(n) + p(7))
func ExactWinProbability(probs models.ProbabilityTable) float64 {
	p7 := probs.Of(sevenOut)
	win := 0.0
	for _, e := range probs {
		switch {
		case IsNatural(e.Sum):
			win += e.Probability
		case IsCraps(e.Sum):
		default:
			if denom := e.Probability + p7; denom > 0 {
				win += e.Probability * e.Probability / denom
			}
		}
	}
	return win
}
