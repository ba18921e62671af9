package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(settingsCmd.Commands()))
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "set", "reset"}, names)
}

func TestSettingsCmd_Show(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := mustExecute(t, "settings")

	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, domain.SettingBackendURL)
	assert.Contains(t, out, domain.DefaultAppSettings().Backend.URL)
	assert.Regexp(t, `filters\.categories\s+\(none\)`, out)
	assert.Regexp(t, `search\.debounce_ms\s+300`, out)
}

func TestSettingsCmd_SetAndReset(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out := mustExecute(t, "settings", "set", domain.SettingFilterCategories, "science,", "history")
	assert.Contains(t, out, "Set "+domain.SettingFilterCategories)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"science", "history"}, settings.Filters.Categories)

	out = mustExecute(t, "settings", "reset", domain.SettingFilterCategories)
	assert.Contains(t, out, "Reset "+domain.SettingFilterCategories)

	settings, err = settingsService.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.Filters.Categories)
}

func TestSettingsCmd_SetRejects(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "settings", "set", domain.SettingDebounce, "soon")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "settings", "set", "colour", "blue")
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)

	_, err = execute(t, "settings", "set", domain.SettingDebounce)
	assert.Error(t, err, "value is required")
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	_, err := execute(t, "settings", "show")

	assert.EqualError(t, err, "settings service not configured")
}
