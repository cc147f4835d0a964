// Package service provides the passphrase generation services: random word
// selection from a pool and formatting of the selected words.
package service

import (
	"github.com/allisson/passgen/internal/passphrase/domain"
)

// Selector draws words from a pool uniformly at random without replacement.
type Selector interface {
	Select(pool *domain.WordPool, count int) ([]string, error)
}

// Formatter assembles selected words into the final passphrase string.
type Formatter interface {
	Format(words []string, params domain.Params) (string, error)
}
