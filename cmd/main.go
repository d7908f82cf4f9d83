package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/fungo/internal/adapters/results"
	"github.com/okian/fungo/internal/adapters/roster"
	app "github.com/okian/fungo/internal/app"
	"github.com/okian/fungo/internal/config"
	"github.com/okian/fungo/internal/domain/game"
	"github.com/okian/fungo/pkg/logger"
	"github.com/okian/fungo/pkg/metrics"
)

// HTTP server timeout constants for the metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// teeTrace fans trace events out to two sinks.
type teeTrace struct {
	a, b game.Trace
}

func (t teeTrace) GameStart(id string, order []string) { t.a.GameStart(id, order); t.b.GameStart(id, order) }
func (t teeTrace) Play(ev game.PlayEvent)              { t.a.Play(ev); t.b.Play(ev) }
func (t teeTrace) InningEnd(id string, inning, runs int) {
	t.a.InningEnd(id, inning, runs)
	t.b.InningEnd(id, inning, runs)
}
func (t teeTrace) GameEnd(id string, runs int) { t.a.GameEnd(id, runs); t.b.GameEnd(id, runs) }

func main() {
	var (
		rosterPath = flag.String("roster", "", "Roster YAML file (overrides config)")
		lineupFlag = flag.String("lineup", "", "Comma-separated batting order of 9 player IDs (default: roster lineup)")
		games      = flag.Int("games", 0, "Number of games to simulate (overrides config)")
		seed       = flag.Int64("seed", 0, "Base random seed (overrides config); 0 derives one from the clock")
		showPlays  = flag.Bool("show-plays", false, "Log play-by-play at debug level")
		saveYAML   = flag.Bool("save-yaml", false, "Write a detailed YAML report under the results directory")
	)
	flag.Parse()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	if *showPlays {
		_ = logger.SetLevelString("debug")
	}

	// Flag overrides.
	if *rosterPath != "" {
		cfg.RosterPath = *rosterPath
	}
	if *games > 0 {
		cfg.NumGames = *games
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ros, err := roster.Load(ctx, cfg.RosterPath)
	if err != nil {
		os.Stderr.WriteString("failed to load roster: " + err.Error() + "\n")
		return
	}

	order := ros.Lineup
	if *lineupFlag != "" {
		order = strings.Split(*lineupFlag, ",")
		for i := range order {
			order[i] = strings.TrimSpace(order[i])
		}
	}
	if len(order) == 0 {
		os.Stderr.WriteString("no batting order: pass -lineup or add a lineup section to the roster\n")
		return
	}

	rules, err := cfg.Rules()
	if err != nil {
		os.Stderr.WriteString("invalid baserunning rules: " + err.Error() + "\n")
		return
	}

	// Optional Prometheus endpoint.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, log, cfg.MetricsAddr)
	}

	// Trace wiring: recorder feeds the YAML report, the log trace echoes
	// plays to stderr.
	var trace game.Trace = game.NopTrace{}
	var recorder *results.Recorder
	if *saveYAML || *showPlays {
		recorder = results.NewRecorder()
		trace = recorder
		if *showPlays {
			trace = teeTrace{a: recorder, b: game.NewLogTrace(log)}
		}
	}

	svc, err := app.New(ros.Pool(),
		app.WithLogger(log),
		app.WithRules(rules),
		app.WithNumGames(cfg.NumGames),
		app.WithInnings(cfg.InningsPerGame),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithSeed(cfg.Seed),
		app.WithTrace(trace),
	)
	if err != nil {
		os.Stderr.WriteString("failed to build service: " + err.Error() + "\n")
		return
	}

	summary, err := svc.EvaluateLineup(ctx, order, cfg.NumGames, cfg.Seed)
	if err != nil {
		os.Stderr.WriteString("evaluation failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	log.Info(ctx, "lineup evaluated",
		logger.Any("order", order),
		logger.Int("games", summary.Games),
		logger.Float64("mean_runs", summary.MeanRuns),
		logger.Int("min_runs", summary.MinRuns),
		logger.Int("max_runs", summary.MaxRuns),
		logger.Float64("std_dev", summary.StdDev),
	)

	if *saveYAML && recorder != nil {
		path, err := results.SaveYAML(cfg.ResultsDir, results.Report{
			Order:          order,
			Games:          summary.Games,
			InningsPerGame: cfg.InningsPerGame,
			AverageScore:   summary.MeanRuns,
			Details:        recorder.Games(),
		})
		if err != nil {
			log.Error(ctx, "failed to save YAML report", logger.Error(err))
		} else {
			log.Info(ctx, "saved YAML report", logger.String("path", path))
		}
	}

	// The mean goes to stdout alone so callers can parse it.
	fmt.Printf("%.4f\n", summary.MeanRuns)
}

// serveMetrics exposes the Prometheus registry until the context ends.
func serveMetrics(ctx context.Context, log logger.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), readTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(ctx, "metrics server failed", logger.Error(err))
	}
}
