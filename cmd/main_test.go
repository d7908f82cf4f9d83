package main

import (
	"context"
	"os"
	"testing"

	"github.com/okian/fungo/internal/config"
	"github.com/okian/fungo/internal/domain/game"
	"github.com/smartystreets/goconvey/convey"
)

type countingTrace struct {
	starts, plays, innings, ends int
}

func (c *countingTrace) GameStart(string, []string) { c.starts++ }
func (c *countingTrace) Play(game.PlayEvent)        { c.plays++ }
func (c *countingTrace) InningEnd(string, int, int) { c.innings++ }
func (c *countingTrace) GameEnd(string, int)        { c.ends++ }

func TestMainWiring(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			_ = os.Setenv("FUNGO_NUM_GAMES", "12")
			_ = os.Setenv("FUNGO_WORKER_COUNT", "4")
			defer func() {
				_ = os.Unsetenv("FUNGO_NUM_GAMES")
				_ = os.Unsetenv("FUNGO_WORKER_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.NumGames, convey.ShouldEqual, 12)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When a tee trace wraps two sinks", func() {
			first := &countingTrace{}
			second := &countingTrace{}
			tee := teeTrace{a: first, b: second}

			tee.GameStart("g", nil)
			tee.Play(game.PlayEvent{})
			tee.Play(game.PlayEvent{})
			tee.InningEnd("g", 1, 0)
			tee.GameEnd("g", 0)

			convey.Convey("Then both sinks should see every event", func() {
				for _, c := range []*countingTrace{first, second} {
					convey.So(c.starts, convey.ShouldEqual, 1)
					convey.So(c.plays, convey.ShouldEqual, 2)
					convey.So(c.innings, convey.ShouldEqual, 1)
					convey.So(c.ends, convey.ShouldEqual, 1)
				}
			})
		})
	})
}
