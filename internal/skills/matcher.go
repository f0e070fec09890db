// Package skills matches a fixed skill vocabulary against free text.
package skills

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Matcher holds one compiled pattern per vocabulary term. Build it once per
// vocabulary; matching is read-only and cheap after that.
type Matcher struct {
	terms    []string
	patterns []*regexp.Regexp
}

// NewMatcher compiles the vocabulary into case-insensitive patterns.
// Terms are matched as whole words; multi-word terms are matched literally.
// A word boundary is only anchored where the term starts or ends with a word
// character, so terms like "c++" or ".net" keep their literal edges.
func NewMatcher(vocab []string) (*Matcher, error) {
	m := &Matcher{
		terms:    make([]string, 0, len(vocab)),
		patterns: make([]*regexp.Regexp, 0, len(vocab)),
	}
	for _, term := range vocab {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		pattern, err := regexp.Compile(termPattern(term))
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for term %q: %w", term, err)
		}
		m.terms = append(m.terms, term)
		m.patterns = append(m.patterns, pattern)
	}
	return m, nil
}

// Match returns the vocabulary terms found in the text, each at most once,
// in vocabulary order. Matching is case-insensitive; there is no stemming or
// synonym expansion.
func (m *Matcher) Match(text string) []string {
	lower := strings.ToLower(text)

	var found []string
	for i, pattern := range m.patterns {
		if pattern.MatchString(lower) {
			found = append(found, m.terms[i])
		}
	}
	return found
}

// Terms returns the canonical (lowercased) vocabulary this matcher was built
// with, in original order.
func (m *Matcher) Terms() []string {
	terms := make([]string, len(m.terms))
	copy(terms, m.terms)
	return terms
}

// termPattern quotes the term and anchors \b only next to word characters;
// \b between a symbol and a space never matches, which would make terms like
// "c++" unfindable.
func termPattern(term string) string {
	var sb strings.Builder
	runes := []rune(term)
	if isWordRune(runes[0]) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(term))
	if isWordRune(runes[len(runes)-1]) {
		sb.WriteString(`\b`)
	}
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
