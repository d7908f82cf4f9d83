package leaderboard

import "errors"

// Sentinel kinds for leaderboard errors.
var (
	ErrNotFound     = errors.New("lineup not found")
	ErrInvalidLimit = errors.New("invalid leaderboard limit")
	ErrInvalidOrder = errors.New("invalid batting order")
)
