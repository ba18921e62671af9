package driving

import (
	"context"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// ThemeService manages the persisted colour theme.
type ThemeService interface {
	// Init resolves the preferred theme and persists it.
	Init(ctx context.Context) (domain.Theme, error)

	// Current returns the stored theme, or the environment preference.
	Current(ctx context.Context) (domain.Theme, error)

	// Apply persists a theme.
	Apply(ctx context.Context, theme domain.Theme) error

	// Toggle switches between light and dark and persists the result.
	Toggle(ctx context.Context) (domain.Theme, error)
}
