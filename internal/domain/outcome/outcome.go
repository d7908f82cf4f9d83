// Package outcome converts a batter's season statistics into a
// probability distribution over plate-appearance outcomes.
package outcome

import (
	"fmt"
	"math"

	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/pkg/draw"
)

// sumTolerance is the permitted deviation of a distribution from 1.0.
const sumTolerance = 1e-6

// Distribution maps each outcome kind to its probability. Probabilities
// sum to 1.0 within tolerance. Immutable once computed.
type Distribution [model.NumOutcomes]float64

// P returns the probability of the given outcome.
func (d Distribution) P(o model.Outcome) float64 {
	return d[o]
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, p := range d {
		sum += p
	}
	return sum
}

// Draw samples one outcome, consuming exactly one uniform draw.
func (d Distribution) Draw(src draw.Source) model.Outcome {
	u := src.Float64()
	var cum float64
	last := model.Outcome(0)
	for o := model.Outcome(0); int(o) < model.NumOutcomes; o++ {
		if d[o] <= 0 {
			continue
		}
		last = o
		cum += d[o]
		if u < cum {
			return o
		}
	}
	// Floating accumulation can leave u marginally above the total; the
	// last outcome with mass absorbs the residue.
	return last
}

// New derives the outcome distribution for one player's statistics.
// Pure and deterministic given stats. Returns ErrInvalidStats for
// malformed input and ErrModelConsistency if the derived distribution
// fails to sum to 1.0 within tolerance.
func New(stats model.PlayerStats) (Distribution, error) {
	var d Distribution

	if stats.PlateAppearances <= 0 {
		return d, fmt.Errorf("%w: player has %d plate appearances", ErrInvalidStats, stats.PlateAppearances)
	}
	for _, c := range []struct {
		name  string
		count int
	}{
		{"at_bats", stats.AtBats},
		{"hits", stats.Hits},
		{"doubles", stats.Doubles},
		{"triples", stats.Triples},
		{"home_runs", stats.HomeRuns},
		{"walks", stats.Walks},
		{"strikeouts", stats.Strikeouts},
		{"hit_by_pitch", stats.HitByPitch},
	} {
		if c.count < 0 {
			return d, fmt.Errorf("%w: negative %s (%d)", ErrInvalidStats, c.name, c.count)
		}
	}
	if stats.Singles() < 0 {
		return d, fmt.Errorf("%w: extra-base hits exceed total hits (%d > %d)",
			ErrInvalidStats, stats.Doubles+stats.Triples+stats.HomeRuns, stats.Hits)
	}
	if stats.AtBats < stats.Hits {
		return d, fmt.Errorf("%w: hits exceed at_bats (%d > %d)", ErrInvalidStats, stats.Hits, stats.AtBats)
	}
	if stats.ExtraBasePercentage < 0 || stats.ExtraBasePercentage > 1 {
		return d, fmt.Errorf("%w: extra_base_percentage %.3f outside [0,1]", ErrInvalidStats, stats.ExtraBasePercentage)
	}
	if stats.GroundFlyRatio < 0 {
		return d, fmt.Errorf("%w: negative gb_fb_ratio %.3f", ErrInvalidStats, stats.GroundFlyRatio)
	}

	pa := float64(stats.PlateAppearances)
	ab := float64(stats.AtBats)

	d[model.Walk] = float64(stats.Walks) / pa
	d[model.HitByPitch] = float64(stats.HitByPitch) / pa
	d[model.Strikeout] = float64(stats.Strikeouts) / pa

	// Hit rates are computed over at_bats and rescaled into plate
	// appearance space by at_bats/plate_appearances.
	if ab > 0 {
		scale := ab / pa
		d[model.Single] = float64(stats.Singles()) / ab * scale
		d[model.Double] = float64(stats.Doubles) / ab * scale
		d[model.Triple] = float64(stats.Triples) / ab * scale
		d[model.HomeRun] = float64(stats.HomeRuns) / ab * scale
	}

	// The remaining mass is balls in play resulting in an out, split
	// between ground outs and fly outs by the ground/fly ratio.
	inPlayOut := 1.0 - d.Sum()
	if inPlayOut < -sumTolerance {
		return Distribution{}, fmt.Errorf("%w: outcome rates sum to %.6f, above 1", ErrInvalidStats, d.Sum())
	}
	if inPlayOut < 0 {
		inPlayOut = 0
	}
	groundShare := stats.GroundFlyRatio / (1 + stats.GroundFlyRatio)
	d[model.GroundOut] = inPlayOut * groundShare
	d[model.FlyOut] = inPlayOut * (1 - groundShare)

	if sum := d.Sum(); math.Abs(sum-1.0) > sumTolerance {
		return Distribution{}, fmt.Errorf("%w: distribution sums to %.9f", ErrModelConsistency, sum)
	}
	for o, p := range d {
		if p < 0 {
			return Distribution{}, fmt.Errorf("%w: negative probability %.9f for %s",
				ErrModelConsistency, p, model.Outcome(o))
		}
	}

	return d, nil
}
