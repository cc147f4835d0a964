// Package domain defines the word list domain model: named, persisted word
// collections that can back passphrase generation.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word list constraints.
const (
	// MaxNameLength is the maximum length of a word list name.
	MaxNameLength = 255

	// MaxWords is the maximum number of words a stored list may hold.
	MaxWords = 100000
)

// WordList represents a named collection of candidate words.
type WordList struct {
	ID        uuid.UUID
	Name      string
	Words     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the word list against the domain constraints.
func (w *WordList) Validate() error {
	if strings.TrimSpace(w.Name) == "" {
		return ErrInvalidName
	}
	if len(w.Name) > MaxNameLength {
		return ErrInvalidName
	}
	if len(w.Words) == 0 {
		return ErrEmptyWordList
	}
	if len(w.Words) > MaxWords {
		return ErrTooManyWords
	}
	return nil
}

// NormalizeWords lowercases and trims the given words, dropping blanks and
// duplicates while preserving order. Word lists are stored lowercase; display
// casing is a formatting concern.
func NormalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	normalized := make([]string, 0, len(words))

	for _, raw := range words {
		word := strings.ToLower(strings.TrimSpace(raw))
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		normalized = append(normalized, word)
	}

	return normalized
}
