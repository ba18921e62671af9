package domain

import (
	"fmt"
	"strings"
)

// AllFilter is the category sentinel meaning "no category restriction".
const AllFilter = "All"

// DefaultPageSize is the number of hits the backend returns per page.
const DefaultPageSize = 100

// FilterSet is the category selection of a session.
// It is never empty: with no individual category selected it holds AllFilter.
// The zero value selects all categories.
type FilterSet struct {
	ids []string
}

// NewFilterSet returns a set with the given categories selected.
// No ids, or any id equal to AllFilter, selects all categories.
func NewFilterSet(ids ...string) FilterSet {
	var f FilterSet
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if id == AllFilter {
			return FilterSet{}
		}
		if !f.Contains(id) {
			f.ids = append(f.ids, id)
		}
	}
	return f
}

// SelectAll clears every individual selection.
func (f *FilterSet) SelectAll() {
	f.ids = nil
}

// Toggle flips one category. Toggling AllFilter selects all.
// Selecting an individual category clears the "all" state; deselecting the
// last individual category restores it.
func (f *FilterSet) Toggle(id string) {
	if id == AllFilter {
		f.SelectAll()
		return
	}
	next := make([]string, 0, len(f.ids)+1)
	removed := false
	for _, existing := range f.ids {
		if existing == id {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		next = append(next, id)
	}
	if len(next) == 0 {
		next = nil
	}
	f.ids = next
}

// IsAll reports whether the "all" sentinel is active.
func (f FilterSet) IsAll() bool {
	return len(f.ids) == 0
}

// Contains reports whether a category is selected.
// AllFilter is contained only when the sentinel is active.
func (f FilterSet) Contains(id string) bool {
	if id == AllFilter {
		return f.IsAll()
	}
	for _, existing := range f.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Selected returns the selected categories in selection order,
// or ["All"] when the sentinel is active.
func (f FilterSet) Selected() []string {
	if f.IsAll() {
		return []string{AllFilter}
	}
	return append([]string(nil), f.ids...)
}

// String renders the selection for logs and status lines.
func (f FilterSet) String() string {
	return strings.Join(f.Selected(), ", ")
}

// SearchRequest is one request to the search backend.
type SearchRequest struct {
	// Query is the raw query text, trimmed.
	Query string

	// Filters holds category identifiers, or ["All"].
	Filters []string

	// Page is the 1-based result page.
	Page int
}

// Normalize returns a copy with the query trimmed, the page clamped to 1,
// and the filters defaulted to ["All"]. A filter list that mentions the
// sentinel collapses to it.
func (r SearchRequest) Normalize() SearchRequest {
	out := SearchRequest{
		Query:   strings.TrimSpace(r.Query),
		Filters: NewFilterSet(r.Filters...).Selected(),
		Page:    r.Page,
	}
	if out.Page < 1 {
		out.Page = 1
	}
	return out
}

// Validate checks the request invariants: page >= 1 and filters non-empty.
func (r SearchRequest) Validate() error {
	if r.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidInput, r.Page)
	}
	if len(r.Filters) == 0 {
		return fmt.Errorf("%w: filters must not be empty", ErrInvalidInput)
	}
	return nil
}

// Result is a single hit returned by the backend. Immutable once received.
type Result struct {
	// Source is the primary label (the magazine title).
	Source string

	// Issue is an optional issue label.
	Issue string

	// Date is an optional publication date, as sent by the backend.
	Date string

	// Page is the page number inside the source.
	Page int

	// Content is raw markdown.
	Content string

	// CoverImage is an optional image URL.
	CoverImage string
}

// SubLabels returns the optional secondary labels that are present.
func (r Result) SubLabels() []string {
	var labels []string
	if r.Issue != "" {
		labels = append(labels, r.Issue)
	}
	if r.Date != "" {
		labels = append(labels, r.Date)
	}
	return labels
}

// PageLabel returns the "Page N" caption shown with a result.
func (r Result) PageLabel() string {
	return fmt.Sprintf("Page %d", r.Page)
}

// SearchResponse is the backend's answer to a SearchRequest.
type SearchResponse struct {
	Results     []Result
	TotalHits   int
	CurrentPage int
	TotalPages  int
}

// Validate rejects responses that break the wire contract.
func (r SearchResponse) Validate() error {
	switch {
	case r.TotalHits < 0:
		return fmt.Errorf("%w: negative total_hits %d", ErrMalformedResponse, r.TotalHits)
	case r.TotalPages < 0:
		return fmt.Errorf("%w: negative total_pages %d", ErrMalformedResponse, r.TotalPages)
	case len(r.Results) > 0 && r.CurrentPage < 1:
		return fmt.Errorf("%w: current_page %d with results", ErrMalformedResponse, r.CurrentPage)
	}
	return nil
}

// TotalPagesFor returns how many pages of size pageSize hold hits results.
func TotalPagesFor(hits, pageSize int) int {
	if hits <= 0 || pageSize <= 0 {
		return 0
	}
	return (hits + pageSize - 1) / pageSize
}

// RenderedResult is a Result after highlighting and markdown conversion.
type RenderedResult struct {
	Result Result

	// ContentHTML is the highlighted, converted content (or the raw content
	// when conversion failed).
	ContentHTML string

	// BlockHTML is the complete result block: labels, body and cover image.
	BlockHTML string
}

// SearchPage is a response together with everything derived from it.
type SearchPage struct {
	Request  SearchRequest
	Response SearchResponse
	Terms    []Term
	Rendered []RenderedResult
}

// Empty reports whether the page has no results.
func (p *SearchPage) Empty() bool {
	return p == nil || len(p.Response.Results) == 0
}

// Pagination returns the pagination controls for this page.
func (p *SearchPage) Pagination() Pagination {
	if p == nil {
		return Pagination{}
	}
	return NewPagination(p.Response.CurrentPage, p.Response.TotalPages)
}

// CountText returns the result count line for this page.
func (p *SearchPage) CountText() string {
	if p == nil {
		return CountText(0)
	}
	return CountText(p.Response.TotalHits)
}

// HTML concatenates the rendered result blocks.
func (p *SearchPage) HTML() string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range p.Rendered {
		b.WriteString(r.BlockHTML)
	}
	return b.String()
}

// CountText formats a hit count as "Found N result(s)".
func CountText(totalHits int) string {
	if totalHits == 1 {
		return "Found 1 result"
	}
	return fmt.Sprintf("Found %d results", totalHits)
}

// Pagination is the state of the previous/next controls.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	PrevDisabled bool
	NextDisabled bool

	// Visible is false when everything fits on one page.
	Visible bool
}

// NewPagination derives the control state from the backend's page numbers.
func NewPagination(current, total int) Pagination {
	return Pagination{
		CurrentPage:  current,
		TotalPages:   total,
		PrevDisabled: current <= 1,
		NextDisabled: current >= total,
		Visible:      total > 1,
	}
}

// Label returns "current / total".
func (p Pagination) Label() string {
	return fmt.Sprintf("%d / %d", p.CurrentPage, p.TotalPages)
}
