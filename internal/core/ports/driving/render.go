package driving

import "github.com/custodia-labs/sercha-view/internal/core/domain"

// RenderService turns queries into terms and result content into HTML.
type RenderService interface {
	// Tokenize splits a query into highlightable terms.
	Tokenize(query string) []domain.Term

	// Highlight wraps every term occurrence in the HTML highlight marker.
	Highlight(text string, terms []domain.Term) string

	// HighlightWith wraps every term occurrence using the given marker.
	HighlightWith(text string, terms []domain.Term, mark domain.Marker) string

	// Highlighter compiles terms once for highlighting many texts with mark.
	Highlighter(terms []domain.Term, mark domain.Marker) func(string) string

	// Render highlights content for query and converts it to HTML.
	// Conversion failures fall back to the unconverted text; Render never fails.
	Render(content, query string) string

	// RenderResult renders one result into its HTML block.
	RenderResult(result domain.Result, terms []domain.Term) domain.RenderedResult

	// RenderResults renders a page of results with the same terms.
	RenderResults(results []domain.Result, terms []domain.Term) []domain.RenderedResult
}
