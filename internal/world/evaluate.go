package world

import "github.com/AhmedSherif9/HideAndSeek/internal/grid"

// Zone is a small fixed set of grid positions.
type Zone map[grid.Position]struct{}

// NewZone builds a zone from positions.
func NewZone(ps ...grid.Position) Zone {
	z := make(Zone, len(ps))
	for _, p := range ps {
		z[p] = struct{}{}
	}
	return z
}

// Contains reports whether p is in the zone.
func (z Zone) Contains(p grid.Position) bool {
	_, ok := z[p]
	return ok
}

// EvaluateWin is true iff pos is inside winZone and every collectible has
// been picked up. A nil registry never wins.
func EvaluateWin(pos grid.Position, winZone Zone, reg *Registry) bool {
	if reg == nil {
		return false
	}
	return winZone.Contains(pos) && reg.AllCollected()
}

// EvaluateLose is true iff pos coincides with any adversary's world position.
// Adversary positions must already be mapped out of patrol-local space.
func EvaluateLose(pos grid.Position, adversaries []grid.Position) bool {
	for _, a := range adversaries {
		if a == pos {
			return true
		}
	}
	return false
}

// GameState is derived on demand and never stored.
type GameState struct {
	Won  bool
	Lost bool
}

// Outcome collapses a GameState into one value. A win takes precedence over
// being caught on the same square.
func (s GameState) Outcome() Outcome {
	switch {
	case s.Won:
		return OutcomeWon
	case s.Lost:
		return OutcomeCaught
	default:
		return OutcomeInProgress
	}
}

// Outcome is the session result so far.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeWon
	OutcomeCaught
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWon:
		return "won"
	case OutcomeCaught:
		return "caught"
	default:
		return "unknown"
	}
}
