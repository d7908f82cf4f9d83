// Package baserunning resolves how a plate-appearance outcome changes
// base-runner positions, the out count, and runs scored.
package baserunning

import (
	"fmt"

	"github.com/okian/fungo/internal/domain/model"
)

// BatterKey is the fielders-choice weight key representing the batter.
const BatterKey = -1

// defaultOutWeight is used for any victim candidate missing from a
// configured weight map.
const defaultOutWeight = 1.0

// Rules is the immutable configuration for ground-ball resolution.
// Passed explicitly rather than held as ambient state so tests can vary
// it deterministically.
type Rules struct {
	// DPAttemptProbability is the chance a ground ball with a force in
	// place is turned into a double-play attempt.
	DPAttemptProbability float64

	// DPRunnerOutWeights weights which forced runner is retired on a
	// double play, keyed by the base the runner occupies.
	DPRunnerOutWeights map[model.Base]float64

	// FCOutWeights weights who is retired on a fielder's choice, keyed
	// by occupied forced base or BatterKey for the batter.
	FCOutWeights map[int]float64
}

// DefaultRules returns equal-weight victim selection and no double-play
// attempts.
func DefaultRules() Rules {
	return Rules{
		DPAttemptProbability: 0,
		DPRunnerOutWeights:   map[model.Base]float64{},
		FCOutWeights:         map[int]float64{},
	}
}

// Validate checks the configuration ranges.
func (r Rules) Validate() error {
	if r.DPAttemptProbability < 0 || r.DPAttemptProbability > 1 {
		return fmt.Errorf("%w: dp_attempt_probability_on_go %.3f outside [0,1]", ErrInvalidRules, r.DPAttemptProbability)
	}
	for b, w := range r.DPRunnerOutWeights {
		if w < 0 {
			return fmt.Errorf("%w: negative double-play weight %.3f for base %s", ErrInvalidRules, w, b)
		}
		if b < model.First || b > model.Third {
			return fmt.Errorf("%w: double-play weight for invalid base %d", ErrInvalidRules, int(b))
		}
	}
	for k, w := range r.FCOutWeights {
		if w < 0 {
			return fmt.Errorf("%w: negative fielders-choice weight %.3f for key %d", ErrInvalidRules, w, k)
		}
		if k != BatterKey && (k < int(model.First) || k > int(model.Third)) {
			return fmt.Errorf("%w: fielders-choice weight for invalid key %d", ErrInvalidRules, k)
		}
	}
	return nil
}

// dpWeight returns the configured double-play victim weight for a base.
func (r Rules) dpWeight(b model.Base) float64 {
	if w, ok := r.DPRunnerOutWeights[b]; ok {
		return w
	}
	return defaultOutWeight
}

// fcWeight returns the configured fielders-choice victim weight.
func (r Rules) fcWeight(key int) float64 {
	if w, ok := r.FCOutWeights[key]; ok {
		return w
	}
	return defaultOutWeight
}
