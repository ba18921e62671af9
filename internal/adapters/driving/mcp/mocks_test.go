package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	page *domain.SearchPage
	err  error
	got  domain.SearchRequest
}

var _ driving.SearchService = (*mockSearchService)(nil)

func (m *mockSearchService) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchPage, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	if m.page == nil {
		return &domain.SearchPage{Request: req.Normalize()}, nil
	}
	return m.page, nil
}

// mockRenderService is a mock implementation of driving.RenderService.
// It splits queries on spaces and marks terms with brackets.
type mockRenderService struct{}

var _ driving.RenderService = mockRenderService{}

func (mockRenderService) Tokenize(query string) []domain.Term {
	var terms []domain.Term
	for _, w := range strings.Fields(query) {
		terms = append(terms, domain.Word(w))
	}
	return terms
}

func (m mockRenderService) Highlight(text string, terms []domain.Term) string {
	return m.HighlightWith(text, terms, func(s string) string { return "[" + s + "]" })
}

func (mockRenderService) HighlightWith(text string, terms []domain.Term, mark domain.Marker) string {
	for _, t := range terms {
		text = strings.ReplaceAll(text, t.Text, mark(t.Text))
	}
	return text
}

func (m mockRenderService) Highlighter(terms []domain.Term, mark domain.Marker) func(string) string {
	return func(text string) string { return m.HighlightWith(text, terms, mark) }
}

func (m mockRenderService) Render(content, query string) string {
	return "<p>" + m.Highlight(content, m.Tokenize(query)) + "</p>"
}

func (m mockRenderService) RenderResult(result domain.Result, terms []domain.Term) domain.RenderedResult {
	html := "<p>" + m.Highlight(result.Content, terms) + "</p>"
	return domain.RenderedResult{Result: result, ContentHTML: html, BlockHTML: "<div>" + html + "</div>"}
}

func (m mockRenderService) RenderResults(results []domain.Result, terms []domain.Term) []domain.RenderedResult {
	rendered := make([]domain.RenderedResult, 0, len(results))
	for _, r := range results {
		rendered = append(rendered, m.RenderResult(r, terms))
	}
	return rendered
}
