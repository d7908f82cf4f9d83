package draw_test

import (
	"math/rand"
	"testing"

	"github.com/okian/fungo/pkg/draw"
	. "github.com/smartystreets/goconvey/convey"
)

// scripted returns preset uniforms in order, then repeats the last one.
type scripted struct {
	values []float64
	pos    int
}

func (s *scripted) Float64() float64 {
	if s.pos >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

func TestWeighted(t *testing.T) {
	Convey("Given a set of weighted candidates", t, func() {
		candidates := []draw.Candidate[string]{
			{Value: "a", Weight: 1},
			{Value: "b", Weight: 2},
			{Value: "c", Weight: 1},
		}

		Convey("When the uniform lands in the first band", func() {
			v, err := draw.Weighted(&scripted{values: []float64{0.1}}, candidates)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "a")
		})

		Convey("When the uniform lands in the middle band", func() {
			v, err := draw.Weighted(&scripted{values: []float64{0.5}}, candidates)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "b")
		})

		Convey("When the uniform lands in the last band", func() {
			v, err := draw.Weighted(&scripted{values: []float64{0.99}}, candidates)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "c")
		})

		Convey("When all weights are zero", func() {
			flat := []draw.Candidate[string]{
				{Value: "x", Weight: 0},
				{Value: "y", Weight: 0},
			}

			Convey("Then the draw is uniform over the candidates", func() {
				v, err := draw.Weighted(&scripted{values: []float64{0.0}}, flat)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, "x")

				v, err = draw.Weighted(&scripted{values: []float64{0.9}}, flat)
				So(err, ShouldBeNil)
				So(v, ShouldEqual, "y")
			})
		})

		Convey("When the candidate set is empty", func() {
			_, err := draw.Weighted[string](&scripted{values: []float64{0.5}}, nil)
			So(err, ShouldEqual, draw.ErrNoCandidates)
		})

		Convey("When a weight is negative", func() {
			_, err := draw.Weighted(&scripted{values: []float64{0.5}}, []draw.Candidate[string]{
				{Value: "a", Weight: -1},
			})
			So(err, ShouldEqual, draw.ErrNegativeWeight)
		})
	})

	Convey("Given a real random source", t, func() {
		rng := rand.New(rand.NewSource(7))
		candidates := []draw.Candidate[int]{
			{Value: 0, Weight: 3},
			{Value: 1, Weight: 1},
		}

		Convey("When drawing many times", func() {
			const n = 100000
			counts := [2]int{}
			for i := 0; i < n; i++ {
				v, err := draw.Weighted(rng, candidates)
				So(err, ShouldBeNil)
				counts[v]++
			}

			Convey("Then frequencies track the weights", func() {
				So(float64(counts[0])/n, ShouldAlmostEqual, 0.75, 0.01)
				So(float64(counts[1])/n, ShouldAlmostEqual, 0.25, 0.01)
			})
		})
	})
}

func TestChance(t *testing.T) {
	Convey("Given a scripted source", t, func() {
		Convey("Then p=0 never succeeds and p=1 always succeeds", func() {
			So(draw.Chance(&scripted{values: []float64{0.0}}, 0), ShouldBeFalse)
			So(draw.Chance(&scripted{values: []float64{0.999}}, 1), ShouldBeTrue)
		})

		Convey("And a uniform below p succeeds", func() {
			So(draw.Chance(&scripted{values: []float64{0.3}}, 0.5), ShouldBeTrue)
			So(draw.Chance(&scripted{values: []float64{0.7}}, 0.5), ShouldBeFalse)
		})

		Convey("And the draw is consumed even at the boundaries", func() {
			src := &scripted{values: []float64{0.1, 0.2}}
			draw.Chance(src, 0)
			So(src.pos, ShouldEqual, 1)
		})
	})
}
