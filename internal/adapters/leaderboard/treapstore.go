package leaderboard

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/okian/fungo/internal/domain/model"
)

// Treap-based, in-memory Store implementation.
//
// Ordering: mean runs DESC, then batting-order key ASC (deterministic).
// The BST comparator treats "less" as "ranks earlier", so an in-order
// traversal yields the leaderboard from best to worst.

// scoreScale controls fixed-point scaling from float64. Twelve decimal
// places keep tie detection exact for any realistic runs-per-game mean.
const scoreScale = 1_000_000_000_000

type scoreFP int64

func toFixedPoint(x float64) scoreFP {
	if math.IsNaN(x) {
		return 0
	}
	scaled := x * scoreScale
	if scaled > float64(math.MaxInt64) {
		return scoreFP(math.MaxInt64)
	}
	if scaled < float64(math.MinInt64) {
		return scoreFP(math.MinInt64)
	}
	return scoreFP(math.Round(scaled))
}

func toFloat(x scoreFP) float64 {
	return float64(x) / scoreScale
}

// orderKey joins a batting order into the treap key.
func orderKey(order []string) string {
	return strings.Join(order, " ")
}

func splitKey(key string) []string {
	return strings.Split(key, " ")
}

// record stores the fixed-point mean plus the sample size behind it.
type record struct {
	mean  scoreFP
	games int
}

// treap node
type node struct {
	key   string
	mean  scoreFP
	prio  uint64
	left  *node
	right *node
	size  int
}

func nsize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func fix(n *node) {
	if n != nil {
		n.size = 1 + nsize(n.left) + nsize(n.right)
	}
}

// less returns true if (aMean, aKey) should appear before (bMean, bKey)
// in the leaderboard (higher means first).
func less(aMean scoreFP, aKey string, bMean scoreFP, bKey string) bool {
	if aMean != bMean {
		return aMean > bMean
	}
	return aKey < bKey
}

func rotateRight(y *node) *node {
	x := y.left
	t2 := x.right
	x.right = y
	y.left = t2
	fix(y)
	fix(x)
	return x
}

func rotateLeft(x *node) *node {
	y := x.right
	t2 := y.left
	y.left = x
	x.right = t2
	fix(x)
	fix(y)
	return y
}

// meanToPriority converts a mean to a heap priority. Higher means get
// higher priorities so the best lineups stay near the root.
func meanToPriority(mean scoreFP) uint64 {
	const offset = uint64(1) << 63
	return uint64(mean) + offset
}

func insert(n *node, key string, mean scoreFP) *node {
	if n == nil {
		return &node{key: key, mean: mean, prio: meanToPriority(mean), size: 1}
	}
	if less(mean, key, n.mean, n.key) {
		n.left = insert(n.left, key, mean)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	} else {
		n.right = insert(n.right, key, mean)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}
	fix(n)
	return n
}

func deleteNode(n *node, key string, mean scoreFP) *node {
	if n == nil {
		return nil
	}
	if mean == n.mean && key == n.key {
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		if n.left.prio > n.right.prio {
			n = rotateRight(n)
			n.right = deleteNode(n.right, key, mean)
		} else {
			n = rotateLeft(n)
			n.left = deleteNode(n.left, key, mean)
		}
	} else if less(mean, key, n.mean, n.key) {
		n.left = deleteNode(n.left, key, mean)
	} else {
		n.right = deleteNode(n.right, key, mean)
	}
	fix(n)
	return n
}

// collectTopN appends up to limit entries in rank order.
func collectTopN(n *node, limit int, records map[string]record, out *[]Entry) {
	if n == nil || len(*out) >= limit {
		return
	}
	collectTopN(n.left, limit, records, out)
	if len(*out) < limit {
		if rec, exists := records[n.key]; exists {
			*out = append(*out, Entry{Order: splitKey(n.key), MeanRuns: toFloat(rec.mean), Games: rec.games})
		}
	}
	if len(*out) < limit {
		collectTopN(n.right, limit, records, out)
	}
}

// collectAll appends all entries in rank order.
func collectAll(n *node, records map[string]record, out *[]Entry) {
	if n == nil {
		return
	}
	collectAll(n.left, records, out)
	if rec, ok := records[n.key]; ok {
		*out = append(*out, Entry{Order: splitKey(n.key), MeanRuns: toFloat(rec.mean), Games: rec.games})
	}
	collectAll(n.right, records, out)
}

// TreapStore is the in-memory Store used by the sweep.
type TreapStore struct {
	mu     sync.RWMutex
	root   *node
	byKey  map[string]record
	keymax int
}

// NewTreapStore constructs a treap store with configuration options.
// Context is accepted first to satisfy the project-wide convention.
func NewTreapStore(_ context.Context, opts ...Option) *TreapStore {
	s := &TreapStore{
		byKey:  make(map[string]record),
		keymax: model.LineupSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Insert implements Store.Insert with O(log n) expected time.
func (s *TreapStore) Insert(_ context.Context, order []string, meanRuns float64, games int) (bool, error) {
	if len(order) != s.keymax {
		return false, ErrInvalidOrder
	}
	key := orderKey(order)
	nm := toFixedPoint(meanRuns)

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.byKey[key]; ok {
		if nm <= old.mean {
			return false, nil
		}
		s.root = deleteNode(s.root, key, old.mean)
	}
	s.byKey[key] = record{mean: nm, games: games}
	s.root = insert(s.root, key, nm)
	return true, nil
}

// Rank returns the current rank and mean for a batting order.
func (s *TreapStore) Rank(_ context.Context, order []string) (Entry, error) {
	key := orderKey(order)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byKey[key]; !ok {
		return Entry{}, ErrNotFound
	}

	all := make([]Entry, 0, len(s.byKey))
	collectAll(s.root, s.byKey, &all)
	sortEntries(all)
	assignRanksWithTies(all)

	for _, entry := range all {
		if orderKey(entry.Order) == key {
			return entry, nil
		}
	}
	return Entry{}, ErrNotFound
}

// TopN returns the top N entries ordered by mean runs desc.
func (s *TreapStore) TopN(_ context.Context, n int) ([]Entry, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, n)
	collectTopN(s.root, n, s.byKey, &out)
	assignRanksWithTies(out)
	return out, nil
}

// Count returns the total number of lineups tracked.
func (s *TreapStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKey)
}

// sortEntries orders by mean desc, then key asc, matching the treap order.
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].MeanRuns != entries[j].MeanRuns {
			return entries[i].MeanRuns > entries[j].MeanRuns
		}
		return orderKey(entries[i].Order) < orderKey(entries[j].Order)
	})
}

// assignRanksWithTies gives equal means the same rank and advances the
// rank by one position per distinct mean.
func assignRanksWithTies(entries []Entry) {
	if len(entries) == 0 {
		return
	}
	currentRank := 1
	for i := 0; i < len(entries); i++ {
		entries[i].Rank = currentRank
		sameScoreCount := 1
		for j := i + 1; j < len(entries) && entries[j].MeanRuns == entries[i].MeanRuns; j++ {
			entries[j].Rank = currentRank
			sameScoreCount++
		}
		currentRank++
		i += sameScoreCount - 1
	}
}
