package domain

import (
	"unicode/utf8"
)

// Params holds the formatting parameters for a single passphrase generation call.
type Params struct {
	// WordCount is the number of words drawn from the pool.
	WordCount int
	// Separator is the literal string inserted between consecutive words.
	Separator string
	// Capitalize uppercases the first letter of each word and lowercases the rest.
	Capitalize bool
	// IncludeNumbers appends a random two-digit suffix (00-99) to each word.
	IncludeNumbers bool
}

// DefaultParams returns the default passphrase parameters: four capitalized words
// joined by "-" without numeric suffixes.
func DefaultParams() Params {
	return Params{
		WordCount:      DefaultWordCount,
		Separator:      DefaultSeparator,
		Capitalize:     true,
		IncludeNumbers: false,
	}
}

// Validate checks the parameters against the domain bounds.
func (p Params) Validate() error {
	if p.WordCount < MinWordCount || p.WordCount > MaxWordCount {
		return ErrInvalidWordCount
	}
	if utf8.RuneCountInString(p.Separator) > MaxSeparatorLength {
		return ErrInvalidSeparator
	}
	return nil
}
