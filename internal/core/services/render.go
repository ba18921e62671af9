package services

import (
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// Ensure RenderService implements the interface.
var _ driving.RenderService = (*RenderService)(nil)

const resultBlockTemplate = `<div class="search-result">
<div class="search-result-title">
<h2>{{.Source}}</h2>
{{- range .SubLabels}}
<p class="search-result-sublabel">{{.}}</p>
{{- end}}
<p class="search-result-page">{{.PageLabel}}</p>
</div>
<div class="result-container">
<div class="content-container">
<div class="markdown-body">
{{.Content}}
</div>
</div>
{{- if .CoverImage}}
<div class="cover-image-container">
<img src="{{.CoverImage}}" alt="Magazine Cover" class="cover-image">
</div>
{{- end}}
</div>
</div>
`

var resultBlock = template.Must(template.New("result").Parse(resultBlockTemplate))

type resultBlockData struct {
	Source     string
	SubLabels  []string
	PageLabel  string
	Content    template.HTML
	CoverImage string
}

// RenderService tokenizes queries, highlights content and converts it to HTML.
type RenderService struct {
	mu        sync.RWMutex
	tokenizer *Tokenizer

	converter driven.MarkdownConverter
	observer  driven.SearchObserver
}

// NewRenderService creates a render service.
// The converter must pass raw inline HTML through, or highlight markers are lost.
func NewRenderService(converter driven.MarkdownConverter, operators domain.OperatorTable) *RenderService {
	return &RenderService{
		tokenizer: NewTokenizer(operators),
		converter: converter,
		observer:  nopObserver{},
	}
}

// SetObserver sets the observer notified of conversion fallbacks.
func (s *RenderService) SetObserver(observer driven.SearchObserver) {
	if observer == nil {
		observer = nopObserver{}
	}
	s.observer = observer
}

// SetOperators replaces the operator table used by Tokenize.
func (s *RenderService) SetOperators(operators domain.OperatorTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenizer = NewTokenizer(operators)
}

// Tokenize splits a query into highlightable terms.
func (s *RenderService) Tokenize(query string) []domain.Term {
	s.mu.RLock()
	tokenizer := s.tokenizer
	s.mu.RUnlock()
	return tokenizer.Tokenize(query)
}

// Highlight wraps every term occurrence in the HTML highlight marker.
func (s *RenderService) Highlight(text string, terms []domain.Term) string {
	return highlight(text, terms, domain.HTMLMarker)
}

// HighlightWith wraps every term occurrence using mark.
func (s *RenderService) HighlightWith(text string, terms []domain.Term, mark domain.Marker) string {
	return s.Highlighter(terms, mark)(text)
}

// Highlighter compiles terms once and returns a function that highlights
// any text with mark. A nil mark means the HTML marker.
func (s *RenderService) Highlighter(terms []domain.Term, mark domain.Marker) func(string) string {
	if mark == nil {
		mark = domain.HTMLMarker
	}
	patterns := compileTerms(terms)
	return func(text string) string {
		return patterns.apply(text, mark)
	}
}

// Render highlights the terms of query inside content and converts the
// result from markdown to HTML. If conversion fails the original content
// is returned unchanged.
func (s *RenderService) Render(content, query string) string {
	return s.renderContent(content, compileTerms(s.Tokenize(query)))
}

// RenderResult renders one result into its HTML block.
func (s *RenderService) RenderResult(result domain.Result, terms []domain.Term) domain.RenderedResult {
	return s.renderResult(result, compileTerms(terms))
}

// RenderResults renders a page of results, compiling terms only once.
func (s *RenderService) RenderResults(results []domain.Result, terms []domain.Term) []domain.RenderedResult {
	patterns := compileTerms(terms)
	rendered := make([]domain.RenderedResult, 0, len(results))
	for _, result := range results {
		rendered = append(rendered, s.renderResult(result, patterns))
	}
	return rendered
}

func (s *RenderService) renderResult(result domain.Result, patterns termPatterns) domain.RenderedResult {
	content := s.renderContent(result.Content, patterns)

	var b strings.Builder
	err := resultBlock.Execute(&b, resultBlockData{
		Source:     result.Source,
		SubLabels:  result.SubLabels(),
		PageLabel:  result.PageLabel(),
		Content:    template.HTML(content), //nolint:gosec // converter output, highlight markers are our own markup
		CoverImage: result.CoverImage,
	})
	block := b.String()
	if err != nil {
		logger.Error("render: result block for %q: %v", result.Source, err)
		block = content
	}

	return domain.RenderedResult{
		Result:      result,
		ContentHTML: content,
		BlockHTML:   block,
	}
}

func (s *RenderService) renderContent(content string, patterns termPatterns) string {
	highlighted := patterns.apply(content, domain.HTMLMarker)

	html, err := s.convert(highlighted)
	if err != nil {
		logger.Error("render: %v", err)
		s.observer.RenderFallback()
		return content
	}
	return html
}

// convert runs the converter, turning a panic into an error.
func (s *RenderService) convert(markdown string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrRenderFailed, r)
		}
	}()

	html, err = s.converter.Convert(markdown)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrRenderFailed, err)
	}
	return html, nil
}
