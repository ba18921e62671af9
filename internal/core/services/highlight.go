package services

import (
	"regexp"

	"github.com/custodia-labs/sercha-view/internal/core/domain"
)

// termPatterns holds one compiled case-insensitive pattern per term, in
// term order. Compile once per term list and reuse it for every text.
type termPatterns []*regexp.Regexp

func compileTerms(terms []domain.Term) termPatterns {
	patterns := make(termPatterns, 0, len(terms))
	for _, term := range terms {
		if term.Text == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile("(?i)"+regexp.QuoteMeta(term.Text)))
	}
	return patterns
}

// apply wraps every match of each pattern with mark.
//
// Patterns are applied one after another to the text produced by the
// previous one, and matches are never deduplicated. A later term can
// therefore match inside markup inserted for an earlier one: highlighting
// "high" then "light" rewrites the class attribute of the first span. This
// term-by-term order is part of the output contract; do not merge the
// patterns into one.
func (p termPatterns) apply(text string, mark domain.Marker) string {
	for _, pattern := range p {
		text = pattern.ReplaceAllStringFunc(text, mark)
	}
	return text
}

// highlight wraps every case-insensitive occurrence of each term with mark.
func highlight(text string, terms []domain.Term, mark domain.Marker) string {
	return compileTerms(terms).apply(text, mark)
}
