// Package memory provides an in-memory driven.SearchBackend.
// It matches documents by case-insensitive substring and paginates like the
// remote backend, which makes it a stand-in for tests and demos.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
)

// Ensure Backend implements the interface.
var _ driven.SearchBackend = (*Backend)(nil)

// Backend searches a fixed set of results held in memory.
type Backend struct {
	mu       sync.RWMutex
	docs     []domain.Result
	pageSize int
	err      error
	requests []domain.SearchRequest
}

// NewBackend creates a backend over docs with the given page size.
// A page size below one uses domain.DefaultPageSize.
func NewBackend(pageSize int, docs ...domain.Result) *Backend {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &Backend{
		docs:     append([]domain.Result(nil), docs...),
		pageSize: pageSize,
	}
}

// Add appends documents.
func (b *Backend) Add(docs ...domain.Result) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.docs = append(b.docs, docs...)
}

// FailWith makes every following search return err. Nil restores normal behaviour.
func (b *Backend) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
}

// Requests returns the requests received so far.
func (b *Backend) Requests() []domain.SearchRequest {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]domain.SearchRequest(nil), b.requests...)
}

// Search returns the requested page of documents whose content contains
// every query word. An empty query matches everything.
func (b *Backend) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.requests = append(b.requests, req)
	failure := b.err
	b.mu.Unlock()
	if failure != nil {
		return nil, failure
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	filters := domain.NewFilterSet(req.Filters...)
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(req.Query, `"`, " ")))

	var hits []domain.Result
	for _, doc := range b.docs {
		if !filters.IsAll() && !filters.Contains(doc.Source) {
			continue
		}
		if matchesAll(strings.ToLower(doc.Content), words) {
			hits = append(hits, doc)
		}
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * b.pageSize
	end := start + b.pageSize
	if start > len(hits) {
		start = len(hits)
	}
	if end > len(hits) {
		end = len(hits)
	}

	return &domain.SearchResponse{
		Results:     append([]domain.Result{}, hits[start:end]...),
		TotalHits:   len(hits),
		CurrentPage: page,
		TotalPages:  domain.TotalPagesFor(len(hits), b.pageSize),
	}, nil
}

func matchesAll(content string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(content, w) {
			return false
		}
	}
	return true
}
