package baserunning

import "errors"

// Sentinel kinds for base-running errors.
var (
	// ErrInvalidState marks an internal base-state invariant violation,
	// a bug guard that is never expected in correct operation.
	ErrInvalidState = errors.New("invalid base state")

	// ErrInvalidRules marks an out-of-range rules configuration.
	ErrInvalidRules = errors.New("invalid base-running rules")
)
