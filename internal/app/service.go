// Package service wires the simulation domain together: it evaluates
// batting orders over many games and fans evaluations out across a
// worker pool.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/okian/fungo/internal/domain/baserunning"
	"github.com/okian/fungo/internal/domain/game"
	"github.com/okian/fungo/internal/domain/lineup"
	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/internal/domain/outcome"
	"github.com/okian/fungo/internal/runner"
	"github.com/okian/fungo/pkg/logger"
	"github.com/okian/fungo/pkg/metrics"
)

// Service evaluates lineups against a fixed player pool. Safe for
// concurrent use once constructed.
type Service struct {
	pool  map[string]model.Player
	cache *outcome.Cache
	rules baserunning.Rules

	// Configuration
	workerCount int
	numGames    int
	innings     int
	baseSeed    int64
	trace       game.Trace

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of evaluation workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithRules sets the ground-ball resolution rules.
func WithRules(r baserunning.Rules) Option {
	return func(s *Service) {
		s.rules = r
	}
}

// WithNumGames sets how many games an evaluation simulates by default.
func WithNumGames(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.numGames = n
		}
	}
}

// WithInnings sets the innings per game.
func WithInnings(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.innings = n
		}
	}
}

// WithSeed fixes the base random seed. Zero keeps the clock-derived
// default.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		if seed != 0 {
			s.baseSeed = seed
		}
	}
}

// WithTrace attaches a play-by-play trace to every simulated game.
func WithTrace(t game.Trace) Option {
	return func(s *Service) {
		if t != nil {
			s.trace = t
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service over a player pool. Every player's statistics
// are converted to outcome distributions up front, so an invalid pool
// fails here rather than mid-simulation.
func New(pool map[string]model.Player, opts ...Option) (*Service, error) {
	cache, err := outcome.NewCache(pool)
	if err != nil {
		return nil, fmt.Errorf("build outcome cache: %w", err)
	}

	s := &Service{
		pool:        pool,
		cache:       cache,
		rules:       baserunning.DefaultRules(),
		workerCount: runtime.NumCPU(),
		numGames:    162,
		innings:     game.DefaultInnings,
		baseSeed:    time.Now().UnixNano(),
		trace:       game.NopTrace{},
		logger:      logger.Get().Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.rules.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// EvaluateLineup simulates one batting order over the given number of
// games and returns the aggregated summary. games <= 0 falls back to the
// configured default; seed 0 falls back to the base seed. Each game gets
// its own derived seed so results are reproducible for a fixed base.
func (s *Service) EvaluateLineup(ctx context.Context, order []string, games int, seed int64) (model.LineupScoreSummary, error) {
	if games <= 0 {
		games = s.numGames
	}
	if seed == 0 {
		seed = s.baseSeed
	}

	players, err := lineup.Build(order, s.pool)
	if err != nil {
		return model.LineupScoreSummary{}, err
	}
	dists := make([]outcome.Distribution, len(players))
	for i, p := range players {
		d, ok := s.cache.Get(p.ID)
		if !ok {
			return model.LineupScoreSummary{}, fmt.Errorf("%w: no distribution for %q", lineup.ErrInvalidLineup, p.ID)
		}
		dists[i] = d
	}

	results := make([]model.GameResult, 0, games)
	for i := 0; i < games; i++ {
		select {
		case <-ctx.Done():
			return model.LineupScoreSummary{}, ctx.Err()
		default:
		}

		src := rand.New(rand.NewSource(seed + int64(i))) //nolint:gosec // deterministic simulation, not crypto
		sim, err := game.New(players, dists, s.rules, src,
			game.WithInnings(s.innings),
			game.WithTrace(s.trace),
		)
		if err != nil {
			return model.LineupScoreSummary{}, err
		}

		res, err := sim.PlayGame()
		if err != nil {
			return model.LineupScoreSummary{}, err
		}
		results = append(results, res)
	}

	summary, err := lineup.Summarize(order, results)
	if err != nil {
		return model.LineupScoreSummary{}, err
	}
	metrics.RecordLineupEvaluated()

	s.logger.Debug(ctx, "lineup evaluated",
		logger.Any("order", order),
		logger.Int("games", games),
		logger.Float64("mean_runs", summary.MeanRuns),
	)
	return summary, nil
}

// EvaluateLineups fans a batch of batting orders out across the worker
// pool. Results come back in input order; a failed evaluation carries
// its error in the corresponding Result rather than aborting the batch.
func (s *Service) EvaluateLineups(ctx context.Context, orders [][]string) ([]runner.Result, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	queue := runner.NewInMemoryQueue(runner.WithCapacity(len(orders)))

	results := make([]runner.Result, len(orders))
	var mu sync.Mutex
	onResult := func(r runner.Result) {
		i, err := strconv.Atoi(r.Job.Name)
		if err != nil || i < 0 || i >= len(results) {
			return
		}
		mu.Lock()
		results[i] = r
		mu.Unlock()
	}

	workers := s.workerCount
	if workers > len(orders) {
		workers = len(orders)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		w := runner.NewInMemoryWorker(queue, s, nil,
			runner.WithName(fmt.Sprintf("eval-%d", i)),
			runner.WithLogger(s.logger),
			runner.WithOnResult(onResult),
		)
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Run(ctx)
		}()
	}

	for i, order := range orders {
		job := runner.Job{
			Name:  strconv.Itoa(i),
			Order: order,
			Games: s.numGames,
			// Offset keeps the per-game seed ranges of jobs disjoint.
			Seed: s.baseSeed + int64(i)*int64(s.numGames),
		}
		if !queue.Enqueue(ctx, job) {
			_ = queue.Close()
			wg.Wait()
			return nil, fmt.Errorf("enqueue lineup %d: %w", i, ctx.Err())
		}
	}
	_ = queue.Close()
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// NumGames exposes the configured per-evaluation game count.
func (s *Service) NumGames() int {
	return s.numGames
}
