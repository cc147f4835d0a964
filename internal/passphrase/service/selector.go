package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/allisson/passgen/internal/passphrase/domain"
)

type randomSelector struct{}

// NewSelector creates a word selector backed by crypto/rand. Draws are uniform,
// without replacement within a single call, and independent across calls.
func NewSelector() Selector {
	return &randomSelector{}
}

// Select draws count words from the pool in draw order. Returns
// ErrInsufficientWords if count exceeds the pool size; words are never repeated
// within one draw.
func (s *randomSelector) Select(pool *domain.WordPool, count int) ([]string, error) {
	if count < 1 {
		return nil, domain.ErrInvalidWordCount
	}
	if count > pool.Size() {
		return nil, domain.ErrInsufficientWords
	}

	// Partial Fisher-Yates over a copy of the pool: position i receives a word
	// drawn uniformly from the remaining candidates.
	candidates := pool.Words()
	selected := make([]string, count)

	for i := 0; i < count; i++ {
		remaining := big.NewInt(int64(len(candidates) - i))
		n, err := rand.Int(rand.Reader, remaining)
		if err != nil {
			return nil, fmt.Errorf("failed to draw random word: %w", err)
		}

		j := i + int(n.Int64())
		candidates[i], candidates[j] = candidates[j], candidates[i]
		selected[i] = candidates[i]
	}

	return selected, nil
}
