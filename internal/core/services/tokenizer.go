package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

var (
	// wholePhrasePattern matches a query that is one quoted phrase.
	wholePhrasePattern = regexp.MustCompile(`^".*"$`)

	// tokenPattern matches a quoted run or a run of non-whitespace.
	tokenPattern = regexp.MustCompile(`"[^"]+"|\S+`)
)

// Tokenizer splits a raw query into highlightable terms.
// It is immutable and safe for concurrent use.
type Tokenizer struct {
	operators domain.OperatorTable
}

// NewTokenizer creates a tokenizer that ignores the given operators.
func NewTokenizer(operators domain.OperatorTable) *Tokenizer {
	return &Tokenizer{operators: operators}
}

// Operators returns the operator table in use.
func (t *Tokenizer) Operators() domain.OperatorTable {
	return t.operators
}

// Tokenize returns the terms of query in order of first appearance.
//
// A query that is entirely one quoted phrase yields that phrase as a single
// term. Otherwise quoted runs and whitespace-separated tokens become terms,
// except operator words, operator symbols, and tokens starting with an
// operator prefix, which are dropped whole ("+required" is not highlighted
// at all). Duplicates are kept.
func (t *Tokenizer) Tokenize(query string) []domain.Term {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	if wholePhrasePattern.MatchString(query) {
		phrase := query[1 : len(query)-1]
		if strings.TrimSpace(phrase) == "" {
			return nil
		}
		return []domain.Term{domain.Phrase(phrase)}
	}

	var terms []domain.Term
	for _, token := range tokenPattern.FindAllString(query, -1) {
		quoted := len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"'
		if quoted {
			token = token[1 : len(token)-1]
		}
		if token == "" || t.operators.Ignores(token) {
			continue
		}
		terms = append(terms, domain.Term{Text: token, Phrase: quoted})
	}
	return terms
}
