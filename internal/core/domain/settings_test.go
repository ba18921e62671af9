package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, DefaultBackendURL, s.Backend.URL)
	assert.Equal(t, DefaultBackendTimeout, s.Backend.Timeout)
	assert.Equal(t, DefaultRateLimit, s.Backend.RateLimit)
	assert.Equal(t, DefaultDebounce, s.Search.Debounce)
	assert.Empty(t, s.Filters.Categories)
	assert.Empty(t, s.Query.ExtraOperators)
}

func TestAppSettings_Operators(t *testing.T) {
	s := DefaultAppSettings()
	s.Query.ExtraOperators = []string{"NEAR"}

	ops := s.Operators()

	assert.True(t, ops.Ignores("near"))
	assert.True(t, ops.Ignores("AND"))
}

func TestAppSettings_Value(t *testing.T) {
	s := DefaultAppSettings()
	s.Search.Debounce = 150 * time.Millisecond
	s.Filters.Categories = []string{"science", "art"}

	tests := []struct {
		key  string
		want string
	}{
		{SettingBackendURL, DefaultBackendURL},
		{SettingBackendTimeout, "30"},
		{SettingBackendRateLimit, "5"},
		{SettingDebounce, "150"},
		{SettingFilterCategories, "science,art"},
		{SettingExtraOperators, ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := s.Value(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := s.Value("backend.colour")
	assert.False(t, ok)
}
