package game

import (
	"context"

	"github.com/okian/fungo/internal/domain/baserunning"
	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/pkg/logger"
)

// PlayEvent describes one resolved plate appearance for the trace side
// channel.
type PlayEvent struct {
	GameID  string
	Inning  int
	Batter  model.Slot
	Player  string
	Outcome model.Outcome
	Kind    baserunning.PlayKind
	Runs    int
	Outs    int
	Bases   model.BaseState
}

// Trace receives simulation events as they happen. Implementations must
// not influence the simulation: tracing is a side channel, and a
// simulator run produces identical results with any Trace attached.
type Trace interface {
	GameStart(gameID string, order []string)
	Play(ev PlayEvent)
	InningEnd(gameID string, inning, runs int)
	GameEnd(gameID string, runs int)
}

// NopTrace discards all events. It is the default.
type NopTrace struct{}

func (NopTrace) GameStart(string, []string)  {}
func (NopTrace) Play(PlayEvent)              {}
func (NopTrace) InningEnd(string, int, int)  {}
func (NopTrace) GameEnd(string, int)         {}

// LogTrace writes play-by-play to the structured logger at debug level,
// mirroring the events a scorer would call out.
type LogTrace struct {
	log logger.Logger
}

// NewLogTrace builds a trace that logs through the given logger.
func NewLogTrace(log logger.Logger) *LogTrace {
	return &LogTrace{log: log.Named("play-by-play")}
}

func (t *LogTrace) GameStart(gameID string, order []string) {
	t.log.Debug(context.Background(), "game start",
		logger.String("game", gameID),
		logger.Any("order", order),
	)
}

func (t *LogTrace) Play(ev PlayEvent) {
	t.log.Debug(context.Background(), "plate appearance",
		logger.String("game", ev.GameID),
		logger.Int("inning", ev.Inning),
		logger.String("batter", ev.Player),
		logger.String("outcome", ev.Outcome.String()),
		logger.String("play", ev.Kind.String()),
		logger.Int("runs", ev.Runs),
		logger.Int("outs", ev.Outs),
		logger.String("bases", ev.Bases.String()),
	)
}

func (t *LogTrace) InningEnd(gameID string, inning, runs int) {
	t.log.Debug(context.Background(), "inning over",
		logger.String("game", gameID),
		logger.Int("inning", inning),
		logger.Int("runs", runs),
	)
}

func (t *LogTrace) GameEnd(gameID string, runs int) {
	t.log.Debug(context.Background(), "game over",
		logger.String("game", gameID),
		logger.Int("final_score", runs),
	)
}
