package outcome_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/internal/domain/outcome"
	. "github.com/smartystreets/goconvey/convey"
)

// regular is a plausible everyday player used across tests.
var regular = model.PlayerStats{
	PlateAppearances:    600,
	AtBats:              550,
	Hits:                165,
	Doubles:             30,
	Triples:             3,
	HomeRuns:            20,
	Walks:               40,
	Strikeouts:          120,
	HitByPitch:          10,
	ExtraBasePercentage: 0.4,
	GroundFlyRatio:      1.0,
}

func TestNew(t *testing.T) {
	Convey("Given a regular player's season statistics", t, func() {
		Convey("When deriving the outcome distribution", func() {
			d, err := outcome.New(regular)
			So(err, ShouldBeNil)

			Convey("Then it sums to 1 and every probability is non-negative", func() {
				So(d.Sum(), ShouldAlmostEqual, 1.0, 1e-6)
				for o := model.Outcome(0); int(o) < model.NumOutcomes; o++ {
					So(d.P(o), ShouldBeGreaterThanOrEqualTo, 0)
				}
			})

			Convey("And the per-outcome rates match the season counts", func() {
				So(d.P(model.Walk), ShouldAlmostEqual, 40.0/600, 1e-9)
				So(d.P(model.HitByPitch), ShouldAlmostEqual, 10.0/600, 1e-9)
				So(d.P(model.Strikeout), ShouldAlmostEqual, 0.20, 1e-9)
				So(d.P(model.Single), ShouldAlmostEqual, 112.0/600, 1e-9)
				So(d.P(model.Double), ShouldAlmostEqual, 30.0/600, 1e-9)
				So(d.P(model.Triple), ShouldAlmostEqual, 3.0/600, 1e-9)
				So(d.P(model.HomeRun), ShouldAlmostEqual, (20.0/550)*(550.0/600), 1e-9)
			})

			Convey("And a 1.0 ground/fly ratio splits in-play outs evenly", func() {
				So(d.P(model.GroundOut), ShouldAlmostEqual, d.P(model.FlyOut), 1e-9)
			})
		})

		Convey("When the ground/fly ratio is zero", func() {
			stats := regular
			stats.GroundFlyRatio = 0

			Convey("Then all in-play outs become fly outs", func() {
				d, err := outcome.New(stats)
				So(err, ShouldBeNil)
				So(d.P(model.GroundOut), ShouldEqual, 0)
				So(d.P(model.FlyOut), ShouldBeGreaterThan, 0)
			})
		})
	})

	Convey("Given malformed statistics", t, func() {
		Convey("When the player has zero plate appearances", func() {
			_, err := outcome.New(model.PlayerStats{})
			So(errors.Is(err, outcome.ErrInvalidStats), ShouldBeTrue)
		})

		Convey("When extra-base hits exceed total hits", func() {
			stats := regular
			stats.Hits = 40
			_, err := outcome.New(stats)
			So(errors.Is(err, outcome.ErrInvalidStats), ShouldBeTrue)
		})

		Convey("When hits exceed at_bats", func() {
			stats := regular
			stats.AtBats = 100
			_, err := outcome.New(stats)
			So(errors.Is(err, outcome.ErrInvalidStats), ShouldBeTrue)
		})

		Convey("When a counting stat is negative", func() {
			stats := regular
			stats.Walks = -1
			_, err := outcome.New(stats)
			So(errors.Is(err, outcome.ErrInvalidStats), ShouldBeTrue)
		})

		Convey("When rates exceed the available probability mass", func() {
			stats := regular
			stats.Strikeouts = 500
			_, err := outcome.New(stats)
			So(errors.Is(err, outcome.ErrInvalidStats), ShouldBeTrue)
		})

		Convey("When the ground/fly ratio is negative", func() {
			stats := regular
			stats.GroundFlyRatio = -0.5
			_, err := outcome.New(stats)
			So(errors.Is(err, outcome.ErrInvalidStats), ShouldBeTrue)
		})
	})
}

func TestDrawConvergence(t *testing.T) {
	Convey("Given a derived distribution and a seeded source", t, func() {
		d, err := outcome.New(regular)
		So(err, ShouldBeNil)
		rng := rand.New(rand.NewSource(99))

		Convey("When sampling 100,000 plate appearances", func() {
			const n = 100000
			counts := make([]int, model.NumOutcomes)
			for i := 0; i < n; i++ {
				counts[d.Draw(rng)]++
			}

			Convey("Then empirical frequencies converge to the model", func() {
				for o := model.Outcome(0); int(o) < model.NumOutcomes; o++ {
					So(float64(counts[o])/n, ShouldAlmostEqual, d.P(o), 0.005)
				}
			})
		})
	})
}

func TestCache(t *testing.T) {
	Convey("Given a pool of valid players", t, func() {
		pool := map[string]model.Player{
			"P001": {ID: "P001", Name: "One", Stats: regular},
			"P002": {ID: "P002", Name: "Two", Stats: regular},
		}

		Convey("When building the cache", func() {
			c, err := outcome.NewCache(pool)
			So(err, ShouldBeNil)
			So(c.Len(), ShouldEqual, 2)

			Convey("Then every player resolves to a valid distribution", func() {
				d, ok := c.Get("P001")
				So(ok, ShouldBeTrue)
				So(d.Sum(), ShouldAlmostEqual, 1.0, 1e-6)
			})

			Convey("And an unknown player does not resolve", func() {
				_, ok := c.Get("nope")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the pool contains an invalid player", func() {
			pool["bad"] = model.Player{ID: "bad"}

			Convey("Then the whole build fails", func() {
				_, err := outcome.NewCache(pool)
				So(errors.Is(err, outcome.ErrInvalidStats), ShouldBeTrue)
			})
		})
	})
}
