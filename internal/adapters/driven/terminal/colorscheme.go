// Package terminal adapts properties of the controlling terminal.
package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
)

// Ensure ColorScheme implements the interface.
var _ driven.ColorSchemeDetector = ColorScheme{}

// ColorScheme reports the terminal background through lipgloss.
type ColorScheme struct{}

// PrefersDark returns true if the terminal has a dark background.
func (ColorScheme) PrefersDark() bool {
	return lipgloss.HasDarkBackground()
}

// Fixed is a ColorSchemeDetector with a predetermined answer.
type Fixed bool

// PrefersDark returns the fixed answer.
func (f Fixed) PrefersDark() bool {
	return bool(f)
}
