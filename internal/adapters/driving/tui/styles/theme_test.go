package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

func TestForTheme(t *testing.T) {
	assert.Equal(t, domain.ThemeLight, ForTheme(domain.ThemeLight).Name)
	assert.Equal(t, domain.ThemeDark, ForTheme(domain.ThemeDark).Name)
	assert.Equal(t, domain.ThemeDark, ForTheme(domain.Theme("")).Name)
}

func TestThemes_HighlightIsDistinct(t *testing.T) {
	for _, theme := range []*Theme{DarkTheme(), LightTheme()} {
		t.Run(theme.Name.String(), func(t *testing.T) {
			//nolint:misspell // lipgloss spelling
			colors := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Error, theme.HighlightBg}
			seen := make(map[string]bool)
			for _, c := range colors {
				assert.False(t, seen[string(c)], "duplicate colour: %s", c)
				seen[string(c)] = true
			}
		})
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, domain.ThemeDark, s.Theme().Name)
}

func TestStyles_ApplyIsSharedInPlace(t *testing.T) {
	s := DefaultStyles()
	shared := s

	s.Apply(domain.ThemeLight)

	assert.Equal(t, domain.ThemeLight, shared.Theme().Name)
}

func TestStyles_Marker(t *testing.T) {
	s := DefaultStyles()

	out := s.Marker()("elephant")

	assert.Contains(t, out, "elephant")
}
