package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/allisson/passgen/internal/passphrase/domain"
)

type passphraseFormatter struct{}

// NewFormatter creates a passphrase formatter. Formatting is deterministic except
// for numeric suffixes, which consume crypto/rand; no state is carried between calls.
func NewFormatter() Formatter {
	return &passphraseFormatter{}
}

// Format applies capitalization and optional numeric suffixes to each word, then
// joins the words with the literal separator. Suffixes are two digits drawn
// uniformly from 00-99, independently per word.
func (f *passphraseFormatter) Format(words []string, params domain.Params) (string, error) {
	formatted := make([]string, len(words))

	for i, word := range words {
		if params.Capitalize {
			word = capitalize(word)
		}

		if params.IncludeNumbers {
			n, err := rand.Int(rand.Reader, big.NewInt(100))
			if err != nil {
				return "", fmt.Errorf("failed to draw numeric suffix: %w", err)
			}
			word = fmt.Sprintf("%s%02d", word, n.Int64())
		}

		formatted[i] = word
	}

	return strings.Join(formatted, params.Separator), nil
}

// capitalize uppercases the first letter and lowercases the rest of the word.
func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
