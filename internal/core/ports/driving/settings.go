package driving

import "github.com/custodia-labs/sercha-view/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults applied.
	Get() (*domain.AppSettings, error)

	// Set parses a raw value for a known key and persists it.
	Set(key, value string) error

	// Reset removes a key so its default applies again.
	Reset(key string) error

	// Keys lists the recognised setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
