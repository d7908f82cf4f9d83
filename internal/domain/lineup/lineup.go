// Package lineup validates batting orders and aggregates per-game
// scores into the summary consumed by the exploration layer.
package lineup

import (
	"fmt"

	"github.com/okian/fungo/internal/domain/model"
)

// Build resolves an ordered sequence of player IDs against the roster
// pool, returning the players in batting order. The order must contain
// exactly nine distinct IDs, all present in the pool.
func Build(order []string, pool map[string]model.Player) ([]model.Player, error) {
	if len(order) != model.LineupSize {
		return nil, fmt.Errorf("%w: need exactly %d player IDs, got %d",
			ErrInvalidLineup, model.LineupSize, len(order))
	}

	seen := make(map[string]bool, len(order))
	players := make([]model.Player, len(order))
	for i, id := range order {
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate player ID %q", ErrInvalidLineup, id)
		}
		seen[id] = true

		p, ok := pool[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown player ID %q", ErrInvalidLineup, id)
		}
		players[i] = p
	}
	return players, nil
}
