package domain

import (
	"strings"
	"unicode/utf8"
)

// WordPool is an ordered, case-insensitively deduplicated set of candidate words,
// optionally constrained to a word length range. It is immutable once constructed,
// so a pool value can be shared across concurrent generation calls.
type WordPool struct {
	words []string
}

// NewWordPool builds a pool from source words. Blank entries are dropped, words are
// deduplicated case-insensitively keeping the casing of the first occurrence, and
// words outside [minLength, maxLength] are filtered out (a bound of zero disables
// that side of the filter). Returns ErrEmptyPool if nothing survives and
// ErrInvalidLengthBounds if minLength is greater than maxLength.
func NewWordPool(source []string, minLength, maxLength int) (*WordPool, error) {
	if minLength < 0 || maxLength < 0 {
		return nil, ErrInvalidLengthBounds
	}
	if minLength > 0 && maxLength > 0 && minLength > maxLength {
		return nil, ErrInvalidLengthBounds
	}

	seen := make(map[string]struct{}, len(source))
	words := make([]string, 0, len(source))

	for _, raw := range source {
		word := strings.TrimSpace(raw)
		if word == "" {
			continue
		}

		length := utf8.RuneCountInString(word)
		if minLength > 0 && length < minLength {
			continue
		}
		if maxLength > 0 && length > maxLength {
			continue
		}

		key := strings.ToLower(word)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, word)
	}

	if len(words) == 0 {
		return nil, ErrEmptyPool
	}

	return &WordPool{words: words}, nil
}

// Words returns a copy of the pool contents in insertion order.
func (p *WordPool) Words() []string {
	words := make([]string, len(p.words))
	copy(words, p.words)
	return words
}

// Size returns the number of words in the pool.
func (p *WordPool) Size() int {
	return len(p.words)
}
