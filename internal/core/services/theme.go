package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-view/internal/logger"
)

// Ensure ThemeService implements the interface.
var _ driving.ThemeService = (*ThemeService)(nil)

// ThemeService persists the light/dark preference in local storage.
type ThemeService struct {
	storage  driven.LocalStorage
	detector driven.ColorSchemeDetector
}

// NewThemeService creates a theme service.
// The detector is optional; without it the light theme is the fallback.
func NewThemeService(storage driven.LocalStorage, detector driven.ColorSchemeDetector) *ThemeService {
	return &ThemeService{
		storage:  storage,
		detector: detector,
	}
}

// Init resolves the preferred theme and persists it, so the environment
// preference seen on first start sticks.
func (s *ThemeService) Init(ctx context.Context) (domain.Theme, error) {
	theme, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	if err := s.Apply(ctx, theme); err != nil {
		return "", err
	}
	return theme, nil
}

// Current returns the stored theme. Without a valid stored value it falls
// back to the environment's colour scheme.
func (s *ThemeService) Current(ctx context.Context) (domain.Theme, error) {
	value, ok, err := s.storage.GetItem(ctx, domain.ThemeStorageKey)
	if err != nil {
		return "", fmt.Errorf("theme: %w", err)
	}
	if ok {
		theme, err := domain.ParseTheme(value)
		if err == nil {
			return theme, nil
		}
		logger.Warn("Ignoring stored theme: %v", err)
	}
	return s.preferred(), nil
}

// Apply persists theme.
func (s *ThemeService) Apply(ctx context.Context, theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("theme: %w: %q", domain.ErrInvalidTheme, theme)
	}
	if err := s.storage.SetItem(ctx, domain.ThemeStorageKey, theme.String()); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	logger.Debug("Theme set to %s", theme)
	return nil
}

// Toggle switches between light and dark and persists the result.
func (s *ThemeService) Toggle(ctx context.Context) (domain.Theme, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	next := current.Toggle()
	if err := s.Apply(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *ThemeService) preferred() domain.Theme {
	if s.detector != nil && s.detector.PrefersDark() {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}
