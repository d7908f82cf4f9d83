package model

import "strings"

// Slot identifies a batting-order position, 0 through 8. A runner on
// base is represented by the slot of the batter who reached it, never by
// duplicated player data.
type Slot int

// LineupSize is the fixed number of batting-order slots.
const LineupSize = 9

// Base identifies one of the three bases.
type Base int

// Bases in advancement order. Home is a pseudo-base used as an
// advancement target meaning the runner scores.
const (
	First Base = iota
	Second
	Third
	Home
)

// String returns the conventional base abbreviation.
func (b Base) String() string {
	switch b {
	case First:
		return "1B"
	case Second:
		return "2B"
	case Third:
		return "3B"
	case Home:
		return "home"
	default:
		return "?"
	}
}

// BaseState is the occupancy of the three bases. The zero value is
// empty bases; values are comparable with ==. Mutated only by the
// base-running engine during resolution of one plate appearance.
type BaseState struct {
	// occ stores slot+1 per base so the zero value means empty.
	occ [3]uint8
}

// Occupied reports whether the given base holds a runner.
func (s BaseState) Occupied(b Base) bool {
	return b >= First && b <= Third && s.occ[b] != 0
}

// Runner returns the slot occupying the given base. The second return
// is false when the base is empty.
func (s BaseState) Runner(b Base) (Slot, bool) {
	if !s.Occupied(b) {
		return 0, false
	}
	return Slot(s.occ[b] - 1), true
}

// Put places a runner on the given base, overwriting any occupant.
func (s *BaseState) Put(b Base, runner Slot) {
	s.occ[b] = uint8(runner) + 1
}

// Take removes and returns the runner on the given base.
func (s *BaseState) Take(b Base) (Slot, bool) {
	r, ok := s.Runner(b)
	if ok {
		s.occ[b] = 0
	}
	return r, ok
}

// Count returns the number of occupied bases.
func (s BaseState) Count() int {
	n := 0
	for b := First; b <= Third; b++ {
		if s.Occupied(b) {
			n++
		}
	}
	return n
}

// BasesWithRunners returns the occupied bases in advancement order
// (first, second, third).
func (s BaseState) BasesWithRunners() []Base {
	var bases []Base
	for b := First; b <= Third; b++ {
		if s.Occupied(b) {
			bases = append(bases, b)
		}
	}
	return bases
}

// String renders the occupancy for traces and logs.
func (s BaseState) String() string {
	if s.Count() == 0 {
		return "bases empty"
	}
	parts := make([]string, 0, 3)
	for b := First; b <= Third; b++ {
		if r, ok := s.Runner(b); ok {
			parts = append(parts, b.String()+":slot"+itoa(int(r)))
		}
	}
	return strings.Join(parts, " ")
}

// itoa avoids strconv for single-digit slots.
func itoa(n int) string {
	if n >= 0 && n <= 9 {
		return string(rune('0' + n))
	}
	return "?"
}
