package driven

// ConfigStore provides access to application configuration.
// Keys are dotted paths into the configuration file ("backend.url").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Unset removes a key so its default applies again.
	// The change is persisted immediately.
	Unset(key string) error

	// Load reads configuration from storage, replacing what is in memory.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
