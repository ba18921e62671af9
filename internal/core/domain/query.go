package domain

import (
	"strings"
	"unicode/utf8"
)

// Term is a single highlightable unit derived from a query.
// Matching against content is always case-insensitive.
type Term struct {
	// Text is the literal text to match, without surrounding quotes.
	Text string

	// Phrase is true when the term came from a quoted run and may contain spaces.
	Phrase bool
}

// Word returns a bare word term.
func Word(text string) Term {
	return Term{Text: text}
}

// Phrase returns a quoted phrase term.
func Phrase(text string) Term {
	return Term{Text: text, Phrase: true}
}

// TermTexts returns the literal text of each term, in order.
func TermTexts(terms []Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Text
	}
	return out
}

// Marker wraps one highlighted match. The match keeps its original casing.
type Marker func(match string) string

// HighlightClass is the class carried by the HTML highlight marker.
const HighlightClass = "highlight"

// HTMLMarker wraps a match in a span with the highlight class.
// Markdown renderers must pass raw inline HTML through for it to survive.
func HTMLMarker(match string) string {
	return `<span class="` + HighlightClass + `">` + match + `</span>`
}

// OperatorTable lists query syntax that must never be highlighted.
// It mirrors the backend's query grammar and can be extended without
// touching the tokenizer.
type OperatorTable struct {
	// Words are boolean operators, compared case-insensitively.
	Words []string

	// Symbols are structural operators that only match as a whole token.
	Symbols []string

	// Prefixes are leading characters that mark a modified term
	// (required, prohibited, grouped, fuzzy, boosted, regex).
	// A token starting with any of them is dropped entirely.
	Prefixes string
}

// DefaultOperatorTable returns the operator grammar of a Lucene-style backend.
func DefaultOperatorTable() OperatorTable {
	return OperatorTable{
		Words:    []string{"AND", "OR", "NOT"},
		Symbols:  []string{"+", "-", "(", ")", "*", "?", "~", "^"},
		Prefixes: "+-~^()/",
	}
}

// WithWords returns a copy of the table with extra operator words appended.
// Blank entries are ignored.
func (t OperatorTable) WithWords(words ...string) OperatorTable {
	out := OperatorTable{
		Words:    make([]string, 0, len(t.Words)+len(words)),
		Symbols:  append([]string(nil), t.Symbols...),
		Prefixes: t.Prefixes,
	}
	out.Words = append(out.Words, t.Words...)
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out.Words = append(out.Words, w)
		}
	}
	return out
}

// Ignores reports whether a token (quotes already stripped) is operator
// syntax rather than content.
func (t OperatorTable) Ignores(token string) bool {
	for _, w := range t.Words {
		if strings.EqualFold(token, w) {
			return true
		}
	}
	for _, s := range t.Symbols {
		if token == s {
			return true
		}
	}
	if token == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(token)
	return strings.ContainsRune(t.Prefixes, first)
}
