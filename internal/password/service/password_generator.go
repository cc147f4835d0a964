// Package service implements character-based password generation backed by
// crypto/rand.
package service

import (
	"crypto/rand"
	"math/big"

	"github.com/allisson/passgen/internal/errors"
	"github.com/allisson/passgen/internal/password/domain"
)

// Generator produces random passwords from a set of character classes.
type Generator interface {
	Generate(params domain.Params) (string, error)
}

type generator struct{}

// NewGenerator returns a crypto/rand backed Generator.
func NewGenerator() Generator {
	return generator{}
}

// Generate builds a password of params.Length characters drawn uniformly from
// the enabled character classes. When the length allows it, the password is
// guaranteed to contain at least one character from every enabled class; the
// result is then shuffled so the guaranteed characters do not cluster at the
// front.
func (g generator) Generate(params domain.Params) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	sets := params.Classes.Sets(params.ExcludeAmbiguous)
	pool := []rune(params.Classes.Pool(params.ExcludeAmbiguous))

	chars := make([]rune, 0, params.Length)

	// One character per enabled class, when they all fit.
	if params.Length >= len(sets) {
		for _, set := range sets {
			r, err := randomRune([]rune(set))
			if err != nil {
				return "", err
			}
			chars = append(chars, r)
		}
	}

	for len(chars) < params.Length {
		r, err := randomRune(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, r)
	}

	if err := shuffle(chars); err != nil {
		return "", err
	}

	return string(chars), nil
}

// randomRune picks one rune from the given set using crypto/rand.
func randomRune(set []rune) (rune, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, errors.Wrap(err, "failed to generate random index")
	}
	return set[n.Int64()], nil
}

// shuffle performs a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(chars []rune) error {
	for i := len(chars) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return errors.Wrap(err, "failed to generate random index")
		}
		j := n.Int64()
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}
