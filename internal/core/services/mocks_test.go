package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// --- Mock implementations ---

// mockConverter implements driven.MarkdownConverter for testing.
// It wraps the input in <p> so conversion is visible in assertions.
type mockConverter struct {
	err   error
	panic bool
	calls []string
}

func (m *mockConverter) Convert(markdown string) (string, error) {
	m.calls = append(m.calls, markdown)
	if m.panic {
		panic("converter exploded")
	}
	if m.err != nil {
		return "", m.err
	}
	return "<p>" + markdown + "</p>", nil
}

// mockBackend implements driven.SearchBackend for testing.
type mockBackend struct {
	resp *domain.SearchResponse
	err  error
	reqs []domain.SearchRequest
}

func (m *mockBackend) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	m.reqs = append(m.reqs, req)
	return m.resp, m.err
}

// recordingObserver implements driven.SearchObserver for testing.
type recordingObserver struct {
	mu        sync.Mutex
	outcomes  []string
	stale     int
	fallbacks int
}

func (o *recordingObserver) SearchCompleted(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func (o *recordingObserver) StaleResponseDiscarded() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stale++
}

func (o *recordingObserver) RenderFallback() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fallbacks++
}

// stubSearch implements driving.SearchService for session tests.
// Pages are keyed by requested page number.
type stubSearch struct {
	pages map[int]*domain.SearchPage
	err   error
	reqs  []domain.SearchRequest
}

func (s *stubSearch) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchPage, error) {
	s.reqs = append(s.reqs, req)
	if s.err != nil {
		return nil, s.err
	}
	page, ok := s.pages[req.Page]
	if !ok {
		return nil, errors.New("no such page")
	}
	return page, nil
}

// fakeClock replaces time.After. When fire is true the returned channel is
// already ready; otherwise it never fires.
type fakeClock struct {
	fire   bool
	delays []time.Duration
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.delays = append(c.delays, d)
	ch := make(chan time.Time, 1)
	if c.fire {
		ch <- time.Time{}
	}
	return ch
}

// resultsPage builds a SearchPage as the search service would.
func resultsPage(current, total, hits int, results ...domain.Result) *domain.SearchPage {
	page := &domain.SearchPage{
		Response: domain.SearchResponse{
			Results:     results,
			TotalHits:   hits,
			CurrentPage: current,
			TotalPages:  total,
		},
	}
	for _, r := range results {
		page.Rendered = append(page.Rendered, domain.RenderedResult{
			Result:    r,
			BlockHTML: "<div>" + r.Content + "</div>",
		})
	}
	return page
}
