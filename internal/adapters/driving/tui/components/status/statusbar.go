// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// Focus tells the bar which keybinding hints to show.
type Focus int

const (
	FocusInput Focus = iota
	FocusFilters
	FocusResults
)

// Bar displays the session phase, result count, pagination and hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	phase   domain.SessionPhase
	display domain.Display
	focus   Focus
	message string
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		phase:  domain.PhaseIdle,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	if s.message != "" {
		return s.styles.Normal.Render(s.message)
	}

	switch s.phase {
	case domain.PhaseDebouncing:
		return s.styles.Muted.Render("Typing...")
	case domain.PhaseSearching:
		return s.styles.Muted.Render("Searching...")
	case domain.PhaseFailed:
		return s.styles.Error.Render(s.display.Message)
	case domain.PhaseIdle:
		return s.styles.Muted.Render("Ready")
	}

	parts := make([]string, 0, 2)
	if s.display.CountVisible {
		parts = append(parts, s.display.CountText)
	} else if s.display.Message != "" {
		parts = append(parts, s.display.Message)
	}
	if s.display.Pagination.Visible {
		parts = append(parts, "Page "+s.display.Pagination.Label())
	}
	return s.styles.Normal.Render(strings.Join(parts, " · "))
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	switch s.focus {
	case FocusResults:
		bindings = s.keymap.ResultsHelp()
	case FocusFilters:
		bindings = s.keymap.FiltersHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetSession updates the bar from the session's phase and display.
func (s *Bar) SetSession(phase domain.SessionPhase, display domain.Display) {
	s.phase = phase
	s.display = display
}

// Phase returns the phase last shown.
func (s *Bar) Phase() domain.SessionPhase {
	return s.phase
}

// SetFocus selects which hints are shown.
func (s *Bar) SetFocus(f Focus) {
	s.focus = f
}

// SetMessage sets a transient message that replaces the session summary.
// An empty message restores it.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}
