// Package draw provides weighted random selection over an injected
// uniform source. All randomized decisions in the simulation go through
// this package so resolution logic stays declarative: callers build a
// list of (value, weight) candidates and draw once, with no retries.
package draw

// Source yields uniform values in [0, 1). *math/rand.Rand satisfies it;
// tests may supply a scripted source for deterministic behavior.
type Source interface {
	Float64() float64
}

// Candidate pairs a selectable value with its non-negative weight.
type Candidate[T any] struct {
	Value  T
	Weight float64
}

// Weighted selects one candidate with probability proportional to its
// weight, consuming exactly one uniform draw. If every weight is zero
// the draw falls back to a uniform choice over the candidates. An empty
// candidate set returns ErrNoCandidates.
func Weighted[T any](src Source, candidates []Candidate[T]) (T, error) {
	var zero T
	if len(candidates) == 0 {
		return zero, ErrNoCandidates
	}

	var total float64
	for _, c := range candidates {
		if c.Weight < 0 {
			return zero, ErrNegativeWeight
		}
		total += c.Weight
	}

	u := src.Float64()
	if total <= 0 {
		// Degenerate weights: uniform over candidates.
		idx := int(u * float64(len(candidates)))
		if idx >= len(candidates) {
			idx = len(candidates) - 1
		}
		return candidates[idx].Value, nil
	}

	threshold := u * total
	var cum float64
	for _, c := range candidates {
		cum += c.Weight
		if threshold < cum {
			return c.Value, nil
		}
	}
	// Floating accumulation can land exactly on total; last candidate wins.
	return candidates[len(candidates)-1].Value, nil
}

// Chance reports a Bernoulli trial with success probability p, consuming
// exactly one uniform draw. p <= 0 never succeeds; p >= 1 always does.
func Chance(src Source, p float64) bool {
	// Always consume the draw so random streams stay aligned regardless
	// of the probability value.
	u := src.Float64()
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return u < p
}
