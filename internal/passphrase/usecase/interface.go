// Package usecase implements the passphrase generation business logic,
// orchestrating word source resolution, selection, and formatting.
package usecase

import (
	"context"
)

// GenerateInput contains the parameters for a passphrase generation call.
// Zero values fall back to the domain defaults where noted.
type GenerateInput struct {
	// WordCount is the number of words to draw (0 means the default of 4).
	WordCount int
	// Separator is the literal string joining words. An empty separator is
	// honored as-is; callers wanting the default must pass "-" explicitly.
	Separator string
	// Capitalize uppercases the first letter of each word.
	Capitalize bool
	// IncludeNumbers appends a random two-digit suffix to each word.
	IncludeNumbers bool
	// MinWordLength filters out shorter words from the pool (0 disables).
	MinWordLength int
	// MaxWordLength filters out longer words from the pool (0 disables).
	MaxWordLength int
	// Words is an optional custom word source; it takes precedence over
	// WordListName and the corpus.
	Words []string
	// WordListName selects a stored word list as the source.
	WordListName string
}

// UseCase defines the interface for passphrase generation operations.
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
	GenerateBatch(ctx context.Context, input GenerateInput, count int) ([]string, error)
}

// WordSource resolves the word sequence backing a generation call, applying the
// precedence custom words > stored word list > corpus > fallback list.
type WordSource interface {
	Resolve(ctx context.Context, customWords []string, listName string) ([]string, error)
}
