package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/okian/fungo/internal/config"
	"github.com/okian/fungo/internal/sweep"
	"github.com/okian/fungo/pkg/logger"
)

// Default configuration constants.
const (
	defaultGames  = 162
	defaultTopN   = 10
	defaultOutput = "all_lineup_results.csv"
)

func main() {
	var (
		rosterPath = flag.String("roster", "", "Roster YAML file (overrides config)")
		outputCSV  = flag.String("csv", defaultOutput, "Summary CSV output path")
		games      = flag.Int("games", defaultGames, "Games simulated per lineup")
		workers    = flag.Int("workers", runtime.NumCPU(), "Number of concurrent evaluation workers")
		seed       = flag.Int64("seed", 0, "Base random seed; 0 derives one from the clock")
		topN       = flag.Int("top", defaultTopN, "Number of top lineups to report")
		maxLineups = flag.Int("max", 0, "Cap on permutations evaluated; 0 evaluates all")
		fixLeadoff = flag.Bool("fix-leadoff", false, "Hold the first roster player in the leadoff slot")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sweep.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	rules, err := cfg.Rules()
	if err != nil {
		os.Stderr.WriteString("invalid baserunning rules: " + err.Error() + "\n")
		return
	}

	path := cfg.RosterPath
	if *rosterPath != "" {
		path = *rosterPath
	}

	sweepCfg := &sweep.Config{
		RosterPath: path,
		OutputCSV:  *outputCSV,
		Games:      *games,
		Workers:    *workers,
		Seed:       *seed,
		TopN:       *topN,
		MaxLineups: *maxLineups,
		FixLeadoff: *fixLeadoff,
		Rules:      rules,
	}

	if err := sweep.Run(ctx, sweepCfg); err != nil {
		os.Stderr.WriteString("sweep failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
