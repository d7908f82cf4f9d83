package lineup

import "errors"

// Sentinel kinds for lineup errors.
var (
	ErrInvalidLineup = errors.New("invalid lineup")
	ErrNoData        = errors.New("no game results to aggregate")
)
