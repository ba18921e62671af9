package settings

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-view/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-view/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/services"
)

func newTestView(t *testing.T) (*View, *services.SettingsService) {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	service := services.NewSettingsService(store)

	v := NewView(nil, nil, service)
	v.SetDimensions(100, 30)
	load(t, v, v.Init())
	return v, service
}

// load runs cmd and feeds its message back into the view.
func load(t *testing.T, v *View, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 5)
		msg := cmd()
		switch msg.(type) {
		case messages.SettingsLoaded, messages.SettingsSaved:
			_, cmd = v.Update(msg)
		default:
			return
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectKey(t *testing.T, v *View, name string) {
	t.Helper()
	for range len(v.keys) {
		if v.SelectedKey() == name {
			return
		}
		v.Update(key("down"))
	}
	require.Equal(t, name, v.SelectedKey())
}

func TestNewView_LoadsSettings(t *testing.T) {
	v, service := newTestView(t)

	require.NotNil(t, v.Settings())
	assert.Equal(t, service.Keys(), v.keys)
	assert.Equal(t, domain.SettingBackendRateLimit, v.SelectedKey())

	out := v.View()
	assert.Contains(t, out, "Settings")
	assert.Contains(t, out, domain.SettingBackendURL)
	assert.Contains(t, out, "300")
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil, nil)
	v.SetDimensions(80, 24)

	load(t, v, v.Init())

	assert.Empty(t, v.SelectedKey())
	assert.Contains(t, v.View(), ErrNoSettingsService.Error())

	_, cmd := v.Update(key("enter"))
	assert.Nil(t, cmd)
	assert.False(t, v.Editing())
}

func TestView_EditAndSave(t *testing.T) {
	v, service := newTestView(t)
	selectKey(t, v, domain.SettingDebounce)

	_, cmd := v.Update(key("enter"))
	require.True(t, v.Editing())
	assert.NotNil(t, cmd)
	assert.Equal(t, "300", v.editor.Value())

	v.editor.SetValue("120")
	_, cmd = v.Update(key("enter"))
	assert.False(t, v.Editing())
	load(t, v, cmd)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(120), settings.Search.Debounce.Milliseconds())
	assert.Equal(t, int64(120), v.Settings().Search.Debounce.Milliseconds())
	assert.Contains(t, v.View(), "Saved "+domain.SettingDebounce)
}

func TestView_EditRejected(t *testing.T) {
	v, _ := newTestView(t)
	selectKey(t, v, domain.SettingBackendURL)

	v.Update(key("enter"))
	v.editor.SetValue("ftp://archive")
	_, cmd := v.Update(key("enter"))
	load(t, v, cmd)

	assert.ErrorIs(t, v.err, domain.ErrInvalidInput)
	assert.Contains(t, v.View(), "Error:")
	assert.Equal(t, domain.DefaultAppSettings().Backend.URL, v.Settings().Backend.URL)
}

func TestView_EditCancel(t *testing.T) {
	v, service := newTestView(t)
	selectKey(t, v, domain.SettingFilterCategories)

	v.Update(key("enter"))
	v.editor.SetValue("science")
	_, cmd := v.Update(key("esc"))

	assert.Nil(t, cmd)
	assert.False(t, v.Editing())
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.Filters.Categories)
}

func TestView_Reset(t *testing.T) {
	v, service := newTestView(t)
	require.NoError(t, service.Set(domain.SettingBackendTimeout, "5"))
	load(t, v, v.Init())
	selectKey(t, v, domain.SettingBackendTimeout)

	_, cmd := v.Update(key("r"))
	load(t, v, cmd)

	assert.Equal(t, domain.DefaultAppSettings().Backend.Timeout, v.Settings().Backend.Timeout)
}

func TestView_Back(t *testing.T) {
	v, _ := newTestView(t)

	_, cmd := v.Update(key("esc"))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_ConfigReloaded(t *testing.T) {
	v, service := newTestView(t)
	require.NoError(t, service.Set(domain.SettingExtraOperators, "NEAR"))

	_, cmd := v.Update(messages.ConfigReloaded{})
	load(t, v, cmd)

	assert.Equal(t, []string{"NEAR"}, v.Settings().Query.ExtraOperators)
}
