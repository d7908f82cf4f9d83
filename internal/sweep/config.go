// Package sweep enumerates batting-order permutations, evaluates each
// one across the worker pool, and ranks the results.
package sweep

import (
	"time"

	"github.com/okian/fungo/internal/domain/baserunning"
)

// Config holds configuration for a sweep run.
type Config struct {
	RosterPath string            // Roster YAML file
	OutputCSV  string            // Summary CSV path
	Games      int               // Games simulated per lineup
	Workers    int               // Concurrent evaluation workers
	Seed       int64             // Base random seed; 0 derives from the clock
	TopN       int               // Leaderboard entries reported at the end
	MaxLineups int               // Cap on permutations evaluated; 0 means all
	FixLeadoff bool              // Hold the first player in the leadoff slot
	Rules      baserunning.Rules // Ground-ball resolution rules
}

// Stats holds sweep statistics.
type Stats struct {
	LineupsPlanned   int
	LineupsEvaluated int
	LineupsFailed    int
	GrandTotalRuns   float64
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
