package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/styles"
)

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), nil)

	require.NotNil(t, view)
	assert.Len(t, view.Items(), 4)
	assert.Equal(t, 0, view.Selected())
	assert.Nil(t, view.Init())
	assert.Equal(t, "Initialising...", view.View())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Same(t, view, updated)
	assert.Nil(t, cmd)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
	assert.NotEqual(t, "Initialising...", view.View())
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil, nil)
	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyUp}

	view.Update(up)
	assert.Equal(t, 0, view.Selected(), "stops at the first item")

	for range 5 {
		view.Update(down)
	}
	assert.Equal(t, 3, view.Selected(), "stops at the last item")

	view.Update(up)
	assert.Equal(t, 2, view.Selected())
}

func TestView_Update_Select(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		want  messages.ViewType
	}{
		{"search", 0, messages.ViewSearch},
		{"settings", 1, messages.ViewSettings},
		{"help", 2, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewView(nil, nil)
			for range tt.moves {
				view.Update(tea.KeyMsg{Type: tea.KeyDown})
			}

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: tt.want}, cmd())
		})
	}
}

func TestView_Update_Quit(t *testing.T) {
	view := NewView(nil, nil)
	for range 3 {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = NewView(nil, nil).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil, nil)
	view.SetDimensions(80, 24)

	out := view.View()

	assert.Contains(t, out, "Sercha View")
	assert.Contains(t, out, "> Search")
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, "[q] Quit")
}
