package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
)

func TestFixed(t *testing.T) {
	var d driven.ColorSchemeDetector = Fixed(true)
	assert.True(t, d.PrefersDark())

	d = Fixed(false)
	assert.False(t, d.PrefersDark())
}

func TestColorScheme_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = ColorScheme{}.PrefersDark()
	})
}
