package sweep

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/okian/fungo/internal/adapters/leaderboard"
	"github.com/okian/fungo/internal/adapters/results"
	"github.com/okian/fungo/internal/adapters/roster"
	service "github.com/okian/fungo/internal/app"
	"github.com/okian/fungo/internal/domain/model"
	"github.com/okian/fungo/internal/runner"
	"github.com/okian/fungo/pkg/logger"
	"github.com/okian/fungo/pkg/metrics"
)

// progressLogInterval controls how often sweep progress is logged.
const progressLogInterval = 1000

// Run executes the complete permutation sweep.
func Run(ctx context.Context, cfg *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get().Named("sweep")

	log.Info(ctx, "starting lineup sweep",
		logger.String("roster", cfg.RosterPath),
		logger.String("output", cfg.OutputCSV),
		logger.Int("games", cfg.Games),
		logger.Int("workers", cfg.Workers),
		logger.Int("maxLineups", cfg.MaxLineups),
	)

	// Step 1: Load the roster and pick the lineup pool.
	ros, err := roster.Load(ctx, cfg.RosterPath)
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	ids := ros.Lineup
	if len(ids) == 0 {
		for _, p := range ros.Players[:model.LineupSize] {
			ids = append(ids, p.ID)
		}
	}

	// Step 2: Build the evaluation service.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	svc, err := service.New(ros.Pool(),
		service.WithNumGames(cfg.Games),
		service.WithWorkerCount(cfg.Workers),
		service.WithSeed(seed),
		service.WithRules(cfg.Rules),
	)
	if err != nil {
		return fmt.Errorf("build service: %w", err)
	}

	// Step 3: Enumerate the batting orders.
	var orders [][]string
	if cfg.FixLeadoff {
		orders = FixedLeadoffPermutations(ids, cfg.MaxLineups)
	} else {
		orders = Permutations(ids, cfg.MaxLineups)
	}
	stats.LineupsPlanned = len(orders)
	metrics.UpdateSweepProgress(0, len(orders))
	log.Info(ctx, "generated lineup permutations", logger.Int("count", len(orders)))

	// Step 4: Evaluate them across the worker pool.
	store := leaderboard.NewTreapStore(ctx)
	csvw, err := results.NewCSVWriter(cfg.OutputCSV)
	if err != nil {
		return fmt.Errorf("open summary csv: %w", err)
	}

	queue := runner.NewInMemoryQueue(runner.WithCapacity(len(orders)))

	var mu sync.Mutex
	completed := 0
	onResult := func(r runner.Result) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		metrics.UpdateSweepProgress(completed, len(orders))

		if r.Err != nil {
			stats.LineupsFailed++
			return
		}
		stats.LineupsEvaluated++
		stats.GrandTotalRuns += r.Summary.MeanRuns * float64(r.Summary.Games)
		if err := csvw.Append(r.Job.Order, r.Summary.MeanRuns); err != nil {
			log.Error(ctx, "csv append failed", logger.String("job", r.Job.Name), logger.Error(err))
		}
		if completed%progressLogInterval == 0 {
			log.Info(ctx, "sweep progress",
				logger.Int("completed", completed),
				logger.Int("total", len(orders)),
			)
		}
	}

	workers := cfg.Workers
	if workers > len(orders) {
		workers = len(orders)
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		w := runner.NewInMemoryWorker(queue, svc, store,
			runner.WithName(fmt.Sprintf("sweep-%d", i)),
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
			Games: cfg.Games,
			Seed:  seed + int64(i)*int64(cfg.Games),
		}
		if !queue.Enqueue(ctx, job) {
			break
		}
	}
	_ = queue.Close()
	wg.Wait()

	// Step 5: Close out the CSV with the grand total.
	if err := csvw.Close(stats.GrandTotalRuns); err != nil {
		return fmt.Errorf("close summary csv: %w", err)
	}

	// Step 6: Report the leaderboard.
	if cfg.TopN > 0 {
		top, err := store.TopN(ctx, cfg.TopN)
		if err != nil {
			return fmt.Errorf("read leaderboard: %w", err)
		}
		for _, entry := range top {
			log.Info(ctx, "top lineup",
				logger.Int("rank", entry.Rank),
				logger.Any("order", entry.Order),
				logger.Float64("mean_runs", entry.MeanRuns),
			)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, log, stats)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sweep interrupted: %w", err)
	}
	return nil
}

func displayFinalStats(ctx context.Context, log logger.Logger, stats *Stats) {
	log.Info(ctx, "sweep complete",
		logger.Int("planned", stats.LineupsPlanned),
		logger.Int("evaluated", stats.LineupsEvaluated),
		logger.Int("failed", stats.LineupsFailed),
		logger.Float64("grand_total_runs", stats.GrandTotalRuns),
		logger.String("duration", stats.Duration.String()),
	)
}
