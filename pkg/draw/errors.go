package draw

import "errors"

// Sentinel kinds for draw errors.
var (
	ErrNoCandidates   = errors.New("no candidates to draw from")
	ErrNegativeWeight = errors.New("negative candidate weight")
)
