package outcome

import "errors"

// Sentinel kinds for outcome model errors. Both indicate invalid input
// or an internal bug; neither is retryable.
var (
	ErrInvalidStats     = errors.New("invalid player stats")
	ErrModelConsistency = errors.New("outcome distribution inconsistent")
)
