package driving

import (
	"context"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// SearchService runs one search and renders its results.
type SearchService interface {
	// Search sends the request to the backend and renders every result
	// with the query's terms highlighted.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchPage, error)
}
