package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLMarker(t *testing.T) {
	assert.Equal(t, `<span class="highlight">Cat</span>`, HTMLMarker("Cat"))
}

func TestTermTexts(t *testing.T) {
	terms := []Term{Word("foo"), Phrase("a b")}
	assert.Equal(t, []string{"foo", "a b"}, TermTexts(terms))
	assert.Empty(t, TermTexts(nil))
}

func TestOperatorTable_Ignores(t *testing.T) {
	table := DefaultOperatorTable()

	tests := []struct {
		token string
		want  bool
	}{
		{"AND", true},
		{"and", true},
		{"Or", true},
		{"not", true},
		{"+", true},
		{"-", true},
		{"(", true},
		{")", true},
		{"*", true},
		{"?", true},
		{"~", true},
		{"^", true},
		{"+required", true},
		{"-excluded", true},
		{"~fuzzy", true},
		{"^boost", true},
		{"(group", true},
		{")x", true},
		{"/regex/", true},
		{"plain", false},
		{"wild*", false},
		{"ANDROID", false},
		{"note", false},
		{"?x", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Ignores(tt.token))
		})
	}
}

func TestOperatorTable_WithWords(t *testing.T) {
	base := DefaultOperatorTable()
	extended := base.WithWords("NEAR", " ", "")

	assert.True(t, extended.Ignores("near"))
	assert.False(t, base.Ignores("near"), "base table must not be modified")
	assert.Equal(t, []string{"AND", "OR", "NOT", "NEAR"}, extended.Words)
	assert.Equal(t, base.Symbols, extended.Symbols)
	assert.Equal(t, base.Prefixes, extended.Prefixes)
}
