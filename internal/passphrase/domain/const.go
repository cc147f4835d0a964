// Package domain defines core passphrase domain models: the word pool candidate
// set and the generation parameters applied to selected words.
package domain

// Passphrase generation defaults and bounds.
const (
	// DefaultWordCount is the number of words used when none is requested.
	DefaultWordCount = 4

	// MinWordCount is the minimum number of words in a passphrase.
	MinWordCount = 1

	// MaxWordCount is the maximum number of words in a passphrase.
	MaxWordCount = 10

	// DefaultSeparator is the string inserted between words when none is requested.
	DefaultSeparator = "-"

	// MaxSeparatorLength is the maximum allowed separator length.
	MaxSeparatorLength = 5

	// DefaultMinWordLength is the default lower bound for word length filtering.
	DefaultMinWordLength = 3

	// DefaultMaxWordLength is the default upper bound for word length filtering.
	DefaultMaxWordLength = 12

	// MaxBatchSize is the maximum number of passphrases generated in one batch.
	MaxBatchSize = 100
)
