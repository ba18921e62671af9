package driven

import (
	"context"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// SearchBackend sends search requests to the remote full-text search service.
// Ranking and pagination are owned by the backend.
type SearchBackend interface {
	// Search performs one request/response round trip.
	// Transport failures wrap domain.ErrBackendUnavailable and undecodable
	// bodies wrap domain.ErrMalformedResponse.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error)
}
