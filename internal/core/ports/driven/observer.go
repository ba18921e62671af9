package driven

import "time"

// SearchObserver receives events worth counting.
// Implementations must be safe for concurrent use.
type SearchObserver interface {
	// SearchCompleted records one backend round trip.
	SearchCompleted(outcome string, elapsed time.Duration)

	// StaleResponseDiscarded records a response that arrived after a newer
	// request was issued.
	StaleResponseDiscarded()

	// RenderFallback records a markdown conversion failure.
	RenderFallback()
}

// Search outcomes reported to SearchObserver.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)
