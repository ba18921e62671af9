package driven

import "context"

// LocalStorage is client-local key/value persistence that survives restarts.
type LocalStorage interface {
	// GetItem returns the stored value and whether the key exists.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores a value, replacing any previous one.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes a key. Removing a missing key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// ColorSchemeDetector reports the colour scheme of the environment.
type ColorSchemeDetector interface {
	// PrefersDark returns true if the environment uses a dark background.
	PrefersDark() bool
}
