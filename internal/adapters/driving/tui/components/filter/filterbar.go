// Package filter provides the category filter bar for the TUI.
package filter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// Bar shows the "All" chip followed by one chip per category.
// It only displays the selection; toggling goes through the session.
type Bar struct {
	styles     *styles.Styles
	categories []string
	selected   domain.FilterSet
	cursor     int
	focused    bool
}

// NewBar creates a filter bar over categories.
func NewBar(s *styles.Styles, categories []string) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	b := &Bar{styles: s}
	b.SetCategories(categories)
	return b
}

// SetCategories replaces the offered categories. Blank entries and
// duplicates are dropped.
func (b *Bar) SetCategories(categories []string) {
	seen := make(map[string]bool, len(categories))
	b.categories = b.categories[:0]
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || c == domain.AllFilter || seen[c] {
			continue
		}
		seen[c] = true
		b.categories = append(b.categories, c)
	}
	if b.cursor > len(b.categories) {
		b.cursor = len(b.categories)
	}
}

// Categories returns the offered categories without "All".
func (b *Bar) Categories() []string {
	return append([]string(nil), b.categories...)
}

// SetSelected shows which categories the session has selected.
func (b *Bar) SetSelected(ids []string) {
	b.selected = domain.NewFilterSet(ids...)
}

// Left moves the cursor one chip left.
func (b *Bar) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// Right moves the cursor one chip right.
func (b *Bar) Right() {
	if b.cursor < len(b.categories) {
		b.cursor++
	}
}

// Current returns the id under the cursor; index 0 is domain.AllFilter.
func (b *Bar) Current() string {
	if b.cursor == 0 {
		return domain.AllFilter
	}
	return b.categories[b.cursor-1]
}

// SetFocused toggles the cursor marker.
func (b *Bar) SetFocused(focused bool) {
	b.focused = focused
}

// Focused reports whether the bar has focus.
func (b *Bar) Focused() bool {
	return b.focused
}

// View renders the chips.
func (b *Bar) View() string {
	ids := append([]string{domain.AllFilter}, b.categories...)
	chips := make([]string, 0, len(ids))
	for i, id := range ids {
		label := id
		if b.focused && i == b.cursor {
			label = "[" + label + "]"
		}
		style := b.styles.Chip
		if b.selected.Contains(id) {
			style = b.styles.ActiveChip
		}
		chips = append(chips, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
