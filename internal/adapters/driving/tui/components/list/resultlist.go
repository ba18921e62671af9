// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// linesPerResult is the height of one rendered entry including its gap.
const linesPerResult = 4

// ResultList displays one page of rendered results in a navigable list.
type ResultList struct {
	results   []domain.RenderedResult
	selected  int
	styles    *styles.Styles
	highlight func(string) string
	width     int
	height    int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		styles:    s,
		highlight: func(text string) string { return text },
		width:     80,
		height:    12,
	}
}

// SetHighlighter sets the function applied to each snippet before display.
// It receives plain text and returns styled text.
func (r *ResultList) SetHighlighter(fn func(string) string) {
	if fn == nil {
		fn = func(text string) string { return text }
	}
	r.highlight = fn
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return ""
	}

	visible := r.height / linesPerResult
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.results) {
		end = len(r.results)
	}

	entries := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		entries = append(entries, r.renderResult(i, &r.results[i]))
	}
	return strings.Join(entries, "\n\n")
}

// renderResult formats a single result: title line, labels, snippet.
func (r *ResultList) renderResult(index int, result *domain.RenderedResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Result.Source
	if title == "" {
		title = "(Unknown source)"
	}
	pageLabel := result.Result.PageLabel()

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(fmt.Sprintf("%s%s", indicator, title)) + "  " +
			r.styles.Muted.Render(pageLabel)
	} else {
		titleLine = r.styles.Subtitle.Render(indicator+title) + "  " + r.styles.Muted.Render(pageLabel)
	}

	lines := []string{titleLine}
	if labels := result.Result.SubLabels(); len(labels) > 0 {
		lines = append(lines, r.styles.Muted.Render("    "+strings.Join(labels, " · ")))
	}

	maxSnippet := r.width - 6
	if maxSnippet < 20 {
		maxSnippet = 20
	}
	lines = append(lines, "    "+r.highlight(Snippet(result.Result.Content, maxSnippet)))

	return strings.Join(lines, "\n")
}

// Snippet flattens content to one line and cuts it to at most n runes.
func Snippet(content string, n int) string {
	flat := strings.Join(strings.Fields(content), " ")
	runes := []rune(flat)
	if len(runes) <= n {
		return flat
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// SetResults replaces the list and selects the first entry.
func (r *ResultList) SetResults(results []domain.RenderedResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.RenderedResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.RenderedResult {
	if r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}
