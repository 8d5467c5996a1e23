package frogger

import (
	"time"
)

// Outcome is the result of evaluating a step.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWon
	OutcomeLostVehicle
	OutcomeLostPredator
)

// Message returns the text shown when the game ends with this outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWon:
		return "YOU WON!"
	case OutcomeLostVehicle:
		return "GAME OVER! YOU LOST!"
	case OutcomeLostPredator:
		return "GAME OVER! THE STORK GOT YOU!"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLostVehicle:
		return "lost_vehicle"
	case OutcomeLostPredator:
		return "lost_predator"
	default:
		return "continue"
	}
}

// Over reports whether the outcome ends the session.
func (o Outcome) Over() bool {
	return o != OutcomeContinue
}

// evaluate checks, in order: reaching the top row, being hit by a car,
// being caught by the stork.
func (g *Game) evaluate(now time.Time) Outcome {
	if g.frog.Y == 1 {
		g.score = g.finalScore(now)
		return OutcomeWon
	}
	if g.hitByCar() {
		return OutcomeLostVehicle
	}
	if g.caughtByStork() {
		return OutcomeLostPredator
	}
	return OutcomeContinue
}

// hitByCar reports a footprint overlap with any visible car. A carried or
// invincible frog cannot be hit.
func (g *Game) hitByCar() bool {
	f := &g.frog
	if f.Carried || f.Invincible {
		return false
	}
	fr := f.Rect()
	for i := range g.cars {
		if g.cars[i].Visible && fr.Intersects(g.cars[i].Rect()) {
			return true
		}
	}
	return false
}

// caughtByStork reports whether the stork sits on either frog cell.
func (g *Game) caughtByStork() bool {
	if !g.storkActive() {
		return false
	}
	return g.frog.Rect().Contains(g.stork.X, g.stork.Y)
}

// finalScore is the base score minus time and move penalties, floored at zero.
func (g *Game) finalScore(now time.Time) int {
	s := g.cfg.Scoring
	secs := int(now.Sub(g.start) / time.Second)
	return max(0, s.Base-s.PerSecond*secs-s.PerMove*g.frog.Moves)
}
