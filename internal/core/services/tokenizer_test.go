package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

func TestTokenizer_Tokenize(t *testing.T) {
	tokenizer := NewTokenizer(domain.DefaultOperatorTable())

	tests := []struct {
		name  string
		query string
		want  []domain.Term
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single word", "elephant", []domain.Term{domain.Word("elephant")}},
		{"whole phrase", `"a b c"`, []domain.Term{domain.Phrase("a b c")}},
		{"whole phrase trimmed", `  "a b c"  `, []domain.Term{domain.Phrase("a b c")}},
		{"empty phrase", `""`, nil},
		{"blank phrase", `"  "`, nil},
		{"boolean operators", "AND foo NOT bar", []domain.Term{domain.Word("foo"), domain.Word("bar")}},
		{"lowercase operators", "foo or bar and baz", []domain.Term{
			domain.Word("foo"), domain.Word("bar"), domain.Word("baz"),
		}},
		{"prefixed modifiers", "+required -excluded plain", []domain.Term{domain.Word("plain")}},
		{"structural symbols", "( a + b ) * ? ~ ^ -", []domain.Term{domain.Word("a"), domain.Word("b")}},
		{"fuzzy boost regex", "~fuzzy ^boost /re/ (group) keep", []domain.Term{domain.Word("keep")}},
		{"embedded phrase", `find "exact phrase" here`, []domain.Term{
			domain.Word("find"), domain.Phrase("exact phrase"), domain.Word("here"),
		}},
		{"quoted operator dropped", `"AND" cats`, []domain.Term{domain.Word("cats")}},
		{"wildcard suffix kept", "ele* wal?", []domain.Term{domain.Word("ele*"), domain.Word("wal?")}},
		{"duplicates kept", "cat dog cat", []domain.Term{
			domain.Word("cat"), domain.Word("dog"), domain.Word("cat"),
		}},
		{"unbalanced quote kept as word", `"open quote`, []domain.Term{
			domain.Word(`"open`), domain.Word("quote"),
		}},
		{"two phrases read as one", `"a" "b"`, []domain.Term{domain.Phrase(`a" "b`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenizer.Tokenize(tt.query))
		})
	}
}

func TestTokenizer_Deterministic(t *testing.T) {
	tokenizer := NewTokenizer(domain.DefaultOperatorTable())
	query := `alpha "beta gamma" -delta epsilon OR zeta`

	first := tokenizer.Tokenize(query)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, tokenizer.Tokenize(query))
	}
}

func TestTokenizer_ExtendedOperators(t *testing.T) {
	tokenizer := NewTokenizer(domain.DefaultOperatorTable().WithWords("NEAR"))

	assert.Equal(t, []domain.Term{domain.Word("cat"), domain.Word("dog")}, tokenizer.Tokenize("cat near dog"))
	assert.Equal(t, []string{"AND", "OR", "NOT", "NEAR"}, tokenizer.Operators().Words)
}
