// Package game drives repeated plate appearances through a batting
// order: innings until three outs, games of nine innings, with the
// batting cursor carried across innings within a game.
package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/fungo/internal/domain/baserunning"
	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/internal/domain/outcome"
	"github.com/okian/fungo/pkg/draw"
	"github.com/okian/fungo/pkg/metrics"
)

// DefaultInnings is the regulation game length.
const DefaultInnings = 9

// Simulator simulates complete games for one fixed batting order. Not
// safe for concurrent use; run one Simulator per goroutine.
type Simulator struct {
	players []model.Player
	order   []string
	dists   []outcome.Distribution
	engine  *baserunning.Engine
	innings int
	src     draw.Source
	trace   Trace

	// cursor is the next batting-order slot; it persists across innings
	// within a game and resets only between games.
	cursor int
}

// Option applies a configuration option to the Simulator.
type Option func(*Simulator)

// WithInnings overrides the number of innings per game.
func WithInnings(n int) Option {
	return func(s *Simulator) {
		if n > 0 {
			s.innings = n
		}
	}
}

// WithTrace attaches a trace side channel.
func WithTrace(t Trace) Option {
	return func(s *Simulator) {
		if t != nil {
			s.trace = t
		}
	}
}

// New builds a Simulator for a nine-player batting order with one
// precomputed distribution per slot.
func New(players []model.Player, dists []outcome.Distribution, rules baserunning.Rules, src draw.Source, opts ...Option) (*Simulator, error) {
	if len(players) != model.LineupSize {
		return nil, fmt.Errorf("%w: got %d players", baserunning.ErrInvalidState, len(players))
	}
	if len(dists) != model.LineupSize {
		return nil, fmt.Errorf("%w: got %d distributions", baserunning.ErrInvalidState, len(dists))
	}

	engine, err := baserunning.NewEngine(rules, players, src)
	if err != nil {
		return nil, err
	}

	order := make([]string, len(players))
	for i, p := range players {
		order[i] = p.ID
	}

	s := &Simulator{
		players: players,
		order:   order,
		dists:   dists,
		engine:  engine,
		innings: DefaultInnings,
		src:     src,
		trace:   NopTrace{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// PlayInning simulates one half-inning and returns the runs scored.
// The batting cursor advances past every batter who appeared.
func (s *Simulator) PlayInning(gameID string, inning int) (int, error) {
	var state model.BaseState
	outs := 0
	runs := 0

	for outs < 3 {
		batter := model.Slot(s.cursor)
		o := s.dists[s.cursor].Draw(s.src)

		res, err := s.engine.Resolve(o, state, outs, batter)
		if err != nil {
			return 0, fmt.Errorf("inning %d, batter %s: %w", inning, s.order[s.cursor], err)
		}

		runs += res.Runs
		metrics.RecordPlateAppearance(o.String())
		s.trace.Play(PlayEvent{
			GameID:  gameID,
			Inning:  inning,
			Batter:  batter,
			Player:  s.order[s.cursor],
			Outcome: o,
			Kind:    res.Kind,
			Runs:    res.Runs,
			Outs:    res.Outs,
			Bases:   res.State,
		})

		state, outs = res.State, res.Outs
		s.cursor = (s.cursor + 1) % model.LineupSize
	}

	s.trace.InningEnd(gameID, inning, runs)
	return runs, nil
}

// PlayGame simulates one complete game and returns its result. The
// cursor resets to the leadoff slot at the start of each game.
func (s *Simulator) PlayGame() (model.GameResult, error) {
	s.cursor = 0
	id := uuid.NewString()
	s.trace.GameStart(id, s.order)

	result := model.GameResult{
		ID:         id,
		InningRuns: make([]int, 0, s.innings),
	}
	for inning := 1; inning <= s.innings; inning++ {
		runs, err := s.PlayInning(id, inning)
		if err != nil {
			return model.GameResult{}, err
		}
		result.Runs += runs
		result.InningRuns = append(result.InningRuns, runs)
	}

	metrics.RecordGameSimulated(result.Runs)
	s.trace.GameEnd(id, result.Runs)
	return result, nil
}
