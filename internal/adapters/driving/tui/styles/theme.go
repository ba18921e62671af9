// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// Theme defines the colour palette for one of the domain themes.
type Theme struct {
	// Name is the domain theme this palette belongs to.
	Name domain.Theme

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	StatusBg   lipgloss.Color

	// Highlight colours query term matches.
	HighlightFg lipgloss.Color
	HighlightBg lipgloss.Color
}

// DarkTheme returns the palette used on dark terminals.
func DarkTheme() *Theme {
	return &Theme{
		Name:        domain.ThemeDark,
		Primary:     lipgloss.Color("#7C3AED"), // Purple
		Secondary:   lipgloss.Color("#06B6D4"), // Cyan
		Foreground:  lipgloss.Color("#CDD6F4"),
		Muted:       lipgloss.Color("#6C7086"),
		Error:       lipgloss.Color("#F38BA8"),
		Border:      lipgloss.Color("#45475A"),
		StatusBg:    lipgloss.Color("#181825"),
		HighlightFg: lipgloss.Color("#1E1E2E"),
		HighlightBg: lipgloss.Color("#F9E2AF"),
	}
}

// LightTheme returns the palette used on light terminals.
func LightTheme() *Theme {
	return &Theme{
		Name:        domain.ThemeLight,
		Primary:     lipgloss.Color("#6D28D9"),
		Secondary:   lipgloss.Color("#0E7490"),
		Foreground:  lipgloss.Color("#1F2937"),
		Muted:       lipgloss.Color("#6B7280"),
		Error:       lipgloss.Color("#B91C1C"),
		Border:      lipgloss.Color("#D1D5DB"),
		StatusBg:    lipgloss.Color("#E5E7EB"),
		HighlightFg: lipgloss.Color("#111827"),
		HighlightBg: lipgloss.Color("#FDE68A"),
	}
}

// ForTheme returns the palette for a domain theme.
func ForTheme(t domain.Theme) *Theme {
	if t == domain.ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Chip styles a filter category; ActiveChip a selected one.
	Chip       lipgloss.Style
	ActiveChip lipgloss.Style

	// Border style for bordered containers.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DarkTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.HighlightFg).
			Background(theme.HighlightBg),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.StatusBg).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		ActiveChip: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Secondary).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the dark theme.
func DefaultStyles() *Styles {
	return NewStyles(DarkTheme())
}

// ForDomainTheme returns styles for a domain theme.
func ForDomainTheme(t domain.Theme) *Styles {
	return NewStyles(ForTheme(t))
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Apply switches these styles to another domain theme in place, so every
// component sharing the pointer picks up the change.
func (s *Styles) Apply(t domain.Theme) {
	*s = *ForDomainTheme(t)
}

// Marker returns a highlight marker that renders terms with the Highlight style.
func (s *Styles) Marker() domain.Marker {
	return func(match string) string {
		return s.Highlight.Render(match)
	}
}
