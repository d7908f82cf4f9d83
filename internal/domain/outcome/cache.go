package outcome

import (
	"fmt"

	"github.com/okian/fungo/internal/domain/model"
)

// Cache holds precomputed distributions keyed by player ID. It is
// read-only after construction and therefore safe for concurrent reads
// without synchronization.
type Cache struct {
	dists map[string]Distribution
}

// NewCache derives and caches a distribution for every player in the
// pool. Any invalid player fails the whole build.
func NewCache(pool map[string]model.Player) (*Cache, error) {
	dists := make(map[string]Distribution, len(pool))
	for id, p := range pool {
		d, err := New(p.Stats)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", id, err)
		}
		dists[id] = d
	}
	return &Cache{dists: dists}, nil
}

// Get returns the cached distribution for a player ID.
func (c *Cache) Get(playerID string) (Distribution, bool) {
	d, ok := c.dists[playerID]
	return d, ok
}

// Len returns the number of cached distributions.
func (c *Cache) Len() int {
	return len(c.dists)
}
