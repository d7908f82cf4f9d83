package leaderboard

// Option applies a configuration option to the TreapStore.
type Option func(*TreapStore)

// WithOrderSize overrides the expected batting-order length. Intended for
// tests exercising short orders.
func WithOrderSize(n int) Option {
	return func(s *TreapStore) {
		if n > 0 {
			s.keymax = n
		}
	}
}
