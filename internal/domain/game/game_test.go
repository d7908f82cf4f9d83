package game_test

import (
	"math/rand"
	"testing"

	"github.com/okian/fungo/internal/domain/baserunning"
	"github.com/okian/fungo/internal/domain/game"
	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/internal/domain/outcome"
	. "github.com/smartystreets/goconvey/convey"
)

func testLineup() []model.Player {
	players := make([]model.Player, model.LineupSize)
	for i := range players {
		players[i] = model.Player{
			ID:   "P00" + string(rune('1'+i)),
			Name: "Player " + string(rune('1'+i)),
			Stats: model.PlayerStats{
				PlateAppearances:    600,
				AtBats:              540,
				Hits:                150,
				Doubles:             28,
				Triples:             2,
				HomeRuns:            18,
				Walks:               50,
				Strikeouts:          110,
				HitByPitch:          10,
				ExtraBasePercentage: 0.35,
				GroundFlyRatio:      1.1,
			},
		}
	}
	return players
}

func testDists(players []model.Player) []outcome.Distribution {
	dists := make([]outcome.Distribution, len(players))
	for i, p := range players {
		d, err := outcome.New(p.Stats)
		So(err, ShouldBeNil)
		dists[i] = d
	}
	return dists
}

// strikeoutDists force every plate appearance to a strikeout, making
// inning shape fully deterministic.
func strikeoutDists() []outcome.Distribution {
	dists := make([]outcome.Distribution, model.LineupSize)
	for i := range dists {
		dists[i][model.Strikeout] = 1
	}
	return dists
}

// capturingTrace records batter slots in appearance order.
type capturingTrace struct {
	game.NopTrace
	batters []model.Slot
}

func (t *capturingTrace) Play(ev game.PlayEvent) {
	t.batters = append(t.batters, ev.Batter)
}

func TestPlayInning(t *testing.T) {
	Convey("Given a lineup that always strikes out", t, func() {
		players := testLineup()
		trace := &capturingTrace{}
		sim, err := game.New(players, strikeoutDists(), baserunning.DefaultRules(),
			rand.New(rand.NewSource(1)), game.WithTrace(trace))
		So(err, ShouldBeNil)

		Convey("When two innings are played", func() {
			r1, err := sim.PlayInning("g", 1)
			So(err, ShouldBeNil)
			r2, err := sim.PlayInning("g", 2)
			So(err, ShouldBeNil)

			Convey("Then each inning is exactly three batters and scoreless", func() {
				So(r1, ShouldEqual, 0)
				So(r2, ShouldEqual, 0)
				So(len(trace.batters), ShouldEqual, 6)
			})

			Convey("And the batting cursor persists across innings", func() {
				So(trace.batters, ShouldResemble, []model.Slot{0, 1, 2, 3, 4, 5})
			})
		})
	})
}

func TestPlayGame(t *testing.T) {
	Convey("Given a realistic lineup", t, func() {
		players := testLineup()
		dists := testDists(players)

		Convey("When a full game is simulated", func() {
			sim, err := game.New(players, dists, baserunning.DefaultRules(), rand.New(rand.NewSource(5)))
			So(err, ShouldBeNil)
			result, err := sim.PlayGame()
			So(err, ShouldBeNil)

			Convey("Then it terminates with nine innings and a non-negative total", func() {
				So(len(result.InningRuns), ShouldEqual, 9)
				So(result.Runs, ShouldBeGreaterThanOrEqualTo, 0)
				So(result.ID, ShouldNotBeEmpty)
				sum := 0
				for _, r := range result.InningRuns {
					sum += r
				}
				So(sum, ShouldEqual, result.Runs)
			})
		})

		Convey("When the innings count is overridden", func() {
			sim, err := game.New(players, dists, baserunning.DefaultRules(),
				rand.New(rand.NewSource(5)), game.WithInnings(7))
			So(err, ShouldBeNil)
			result, err := sim.PlayGame()
			So(err, ShouldBeNil)

			Convey("Then the game is seven innings long", func() {
				So(len(result.InningRuns), ShouldEqual, 7)
			})
		})

		Convey("When the same seed is replayed with and without a trace", func() {
			sim1, err := game.New(players, dists, baserunning.DefaultRules(), rand.New(rand.NewSource(11)))
			So(err, ShouldBeNil)
			r1, err := sim1.PlayGame()
			So(err, ShouldBeNil)

			sim2, err := game.New(players, dists, baserunning.DefaultRules(),
				rand.New(rand.NewSource(11)), game.WithTrace(&capturingTrace{}))
			So(err, ShouldBeNil)
			r2, err := sim2.PlayGame()
			So(err, ShouldBeNil)

			Convey("Then the trace does not influence the outcome", func() {
				So(r2.Runs, ShouldEqual, r1.Runs)
				So(r2.InningRuns, ShouldResemble, r1.InningRuns)
			})
		})

		Convey("When the lineup is the wrong size", func() {
			_, err := game.New(players[:5], dists[:5], baserunning.DefaultRules(), rand.New(rand.NewSource(5)))
			So(err, ShouldNotBeNil)
		})
	})
}
