package domain

import (
	"strconv"
	"strings"
	"time"
)

// Default setting values.
const (
	DefaultBackendURL     = "http://localhost:5000"
	DefaultBackendTimeout = 30 * time.Second
	DefaultRateLimit      = 5
	DefaultDebounce       = 300 * time.Millisecond
)

// Setting keys, as used in the configuration file.
const (
	SettingBackendURL       = "backend.url"
	SettingBackendTimeout   = "backend.timeout_seconds"
	SettingBackendRateLimit = "backend.rate_limit"
	SettingDebounce         = "search.debounce_ms"
	SettingFilterCategories = "filters.categories"
	SettingExtraOperators   = "query.extra_operators"
)

// BackendSettings configures the search backend client.
type BackendSettings struct {
	// URL is the backend base URL; requests go to URL + "/search".
	URL string

	// Timeout bounds one request, connection included.
	Timeout time.Duration

	// RateLimit is the maximum requests per second. Zero disables throttling.
	RateLimit int
}

// SearchSettings holds search session behaviour.
type SearchSettings struct {
	// Debounce is how long input must be quiet before a search is sent.
	Debounce time.Duration
}

// FilterSettings lists the categories offered as filters.
type FilterSettings struct {
	Categories []string
}

// QuerySettings extends the query grammar.
type QuerySettings struct {
	// ExtraOperators are additional boolean operator words that are never
	// highlighted, on top of AND, OR and NOT.
	ExtraOperators []string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Backend BackendSettings
	Search  SearchSettings
	Filters FilterSettings
	Query   QuerySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Backend: BackendSettings{
			URL:       DefaultBackendURL,
			Timeout:   DefaultBackendTimeout,
			RateLimit: DefaultRateLimit,
		},
		Search: SearchSettings{
			Debounce: DefaultDebounce,
		},
	}
}

// Operators returns the operator table with the configured extra words.
func (s AppSettings) Operators() OperatorTable {
	return DefaultOperatorTable().WithWords(s.Query.ExtraOperators...)
}

// Value formats the setting stored under key the way it is written on the
// command line. Lists are comma separated.
func (s AppSettings) Value(key string) (string, bool) {
	switch key {
	case SettingBackendURL:
		return s.Backend.URL, true
	case SettingBackendTimeout:
		return strconv.Itoa(int(s.Backend.Timeout / time.Second)), true
	case SettingBackendRateLimit:
		return strconv.Itoa(s.Backend.RateLimit), true
	case SettingDebounce:
		return strconv.Itoa(int(s.Search.Debounce / time.Millisecond)), true
	case SettingFilterCategories:
		return strings.Join(s.Filters.Categories, ","), true
	case SettingExtraOperators:
		return strings.Join(s.Query.ExtraOperators, ","), true
	}
	return "", false
}
