package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService sends one request to the backend and renders the response.
type SearchService struct {
	backend  driven.SearchBackend
	render   driving.RenderService
	observer driven.SearchObserver
}

// NewSearchService creates a new search service.
func NewSearchService(backend driven.SearchBackend, render driving.RenderService) *SearchService {
	return &SearchService{
		backend:  backend,
		render:   render,
		observer: nopObserver{},
	}
}

// SetObserver sets the observer notified of completed searches.
func (s *SearchService) SetObserver(observer driven.SearchObserver) {
	if observer == nil {
		observer = nopObserver{}
	}
	s.observer = observer
}

// Search normalises the request, performs the backend round trip and renders
// every result with the query's terms highlighted.
func (s *SearchService) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchPage, error) {
	logger.Section("Search Execution")

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	logger.Debug("Query: %q, filters: %v, page: %d", req.Query, req.Filters, req.Page)

	start := time.Now()
	resp, err := s.backend.Search(ctx, req)
	if err == nil && resp == nil {
		err = fmt.Errorf("%w: empty body", domain.ErrMalformedResponse)
	}
	if err == nil {
		err = resp.Validate()
	}
	if err != nil {
		s.observer.SearchCompleted(driven.OutcomeError, time.Since(start))
		if errors.Is(err, context.Canceled) {
			logger.Debug("Search cancelled")
		}
		return nil, fmt.Errorf("search: %w", err)
	}

	terms := s.render.Tokenize(req.Query)
	logger.Debug("Backend returned %d of %d hits (page %d/%d), terms: %v",
		len(resp.Results), resp.TotalHits, resp.CurrentPage, resp.TotalPages, domain.TermTexts(terms))

	page := &domain.SearchPage{
		Request:  req,
		Response: *resp,
		Terms:    terms,
		Rendered: s.render.RenderResults(resp.Results, terms),
	}

	outcome := driven.OutcomeSuccess
	if page.Empty() {
		outcome = driven.OutcomeEmpty
	}
	s.observer.SearchCompleted(outcome, time.Since(start))

	return page, nil
}

// nopObserver discards every event.
type nopObserver struct{}

func (nopObserver) SearchCompleted(string, time.Duration) {}
func (nopObserver) StaleResponseDiscarded()               {}
func (nopObserver) RenderFallback()                       {}
