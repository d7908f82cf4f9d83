// Package leaderboard defines the lineup ranking store interface and errors.
package leaderboard

import "context"

// Entry represents one ranked lineup.
type Entry struct {
	Rank     int
	Order    []string
	MeanRuns float64
	Games    int
}

// Store provides read/write access to the lineup ranking state.
type Store interface {
	// Insert records a lineup's evaluation. Re-inserting the same order
	// keeps the higher mean. Returns true if the store changed.
	Insert(ctx context.Context, order []string, meanRuns float64, games int) (bool, error)

	// Rank returns the current rank and mean for a batting order.
	// Returns ErrNotFound if the order has not been evaluated.
	Rank(ctx context.Context, order []string) (Entry, error)

	// TopN returns the top-N entries ordered by mean runs desc.
	TopN(ctx context.Context, n int) ([]Entry, error)

	// Count returns the number of lineups tracked.
	Count(ctx context.Context) int
}
