// Package model contains domain types passed between layers.
package model

// Outcome is one of the nine possible results of a plate appearance.
type Outcome int

// Plate appearance outcome kinds.
const (
	Single Outcome = iota
	Double
	Triple
	HomeRun
	Walk
	HitByPitch
	Strikeout
	GroundOut
	FlyOut

	numOutcomes
)

// NumOutcomes is the number of distinct outcome kinds.
const NumOutcomes = int(numOutcomes)

// String returns the conventional scorebook abbreviation.
func (o Outcome) String() string {
	switch o {
	case Single:
		return "1B"
	case Double:
		return "2B"
	case Triple:
		return "3B"
	case HomeRun:
		return "HR"
	case Walk:
		return "BB"
	case HitByPitch:
		return "HBP"
	case Strikeout:
		return "SO"
	case GroundOut:
		return "GO"
	case FlyOut:
		return "FO"
	default:
		return "?"
	}
}

// IsHit reports whether the outcome puts the ball in play for a hit.
func (o Outcome) IsHit() bool {
	switch o {
	case Single, Double, Triple, HomeRun:
		return true
	default:
		return false
	}
}

// IsOut reports whether the batter is retired on the outcome itself,
// before any fielder's choice reassignment.
func (o Outcome) IsOut() bool {
	switch o {
	case Strikeout, GroundOut, FlyOut:
		return true
	default:
		return false
	}
}
