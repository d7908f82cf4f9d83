package sweep

import (
	"os"
)

// ShowHelp prints usage information for the sweep tool.
func ShowHelp() {
	os.Stdout.WriteString(`Fungo Lineup Sweep Tool
=======================

Evaluates batting-order permutations of a roster and ranks them by mean
runs scored per game.

Usage:
  go run cmd/sweep/main.go [options]

Options:
  -roster string
        Roster YAML file (default "data/roster.yaml")
  -csv string
        Summary CSV output path (default "all_lineup_results.csv")
  -games int
        Games simulated per lineup (default 162)
  -workers int
        Number of concurrent evaluation workers (default CPU cores)
  -seed int
        Base random seed; 0 derives one from the clock
  -top int
        Number of top lineups to report (default 10)
  -max int
        Cap on permutations evaluated; 0 evaluates all 362880
  -fix-leadoff
        Hold the first roster player in the leadoff slot and permute
        the remaining eight (40320 lineups)
  -help
        Show this help message

Examples:
  # Sweep every permutation of the configured lineup
  go run cmd/sweep/main.go

  # A quick capped sweep with a fixed seed
  go run cmd/sweep/main.go -max 1000 -games 20 -seed 42

  # Full sweep with more workers and a custom output file
  go run cmd/sweep/main.go -workers 16 -csv season_sweep.csv
`)
}
