package services

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-view/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

type settingKind int

const (
	kindURL settingKind = iota
	kindPositiveInt
	kindNonNegativeInt
	kindList
)

var settingKinds = map[string]settingKind{
	domain.SettingBackendURL:       kindURL,
	domain.SettingBackendTimeout:   kindPositiveInt,
	domain.SettingBackendRateLimit: kindNonNegativeInt,
	domain.SettingDebounce:         kindNonNegativeInt,
	domain.SettingFilterCategories: kindList,
	domain.SettingExtraOperators:   kindList,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or out-of-range values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Backend: domain.BackendSettings{
			URL:       s.getString(domain.SettingBackendURL, defaults.Backend.URL),
			Timeout:   time.Duration(s.getInt(domain.SettingBackendTimeout, 1, int(defaults.Backend.Timeout/time.Second))) * time.Second,
			RateLimit: s.getInt(domain.SettingBackendRateLimit, 0, defaults.Backend.RateLimit),
		},
		Search: domain.SearchSettings{
			Debounce: time.Duration(s.getInt(domain.SettingDebounce, 0, int(defaults.Search.Debounce/time.Millisecond))) * time.Millisecond,
		},
		Filters: domain.FilterSettings{
			Categories: s.configStore.GetStringSlice(domain.SettingFilterCategories),
		},
		Query: domain.QuerySettings{
			ExtraOperators: s.configStore.GetStringSlice(domain.SettingExtraOperators),
		},
	}

	return settings, nil
}

// Set parses value according to the key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	parsed, err := parseSetting(kind, strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Reset removes a key so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if _, ok := settingKinds[key]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Keys lists the recognised setting keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func (s *SettingsService) getInt(key string, lowest, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	if v := s.configStore.GetInt(key); v >= lowest {
		return v
	}
	return def
}

func parseSetting(kind settingKind, value string) (any, error) {
	switch kind {
	case kindURL:
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: expected an http(s) URL, got %q", domain.ErrInvalidInput, value)
		}
		return strings.TrimRight(value, "/"), nil

	case kindPositiveInt, kindNonNegativeInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: expected an integer, got %q", domain.ErrInvalidInput, value)
		}
		if n < 0 || (kind == kindPositiveInt && n == 0) {
			return nil, fmt.Errorf("%w: %d is out of range", domain.ErrInvalidInput, n)
		}
		return n, nil

	case kindList:
		items := []string{}
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	}
	return nil, domain.ErrUnknownSetting
}
