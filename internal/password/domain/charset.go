// Package domain defines the character-based password domain model: character
// classes, generation parameters, and their bounds.
package domain

import (
	"strings"
)

// Character sets for each class. The symbol set follows common password
// conventions and excludes quotes and backslashes.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are characters easily confused with one another.
	AmbiguousChars = "0O1lI|`"
)

// Password length bounds and default.
const (
	MinLength     = 1
	MaxLength     = 128
	DefaultLength = 12

	// MaxBatchSize is the maximum number of passwords generated in one batch.
	MaxBatchSize = 100
)

// Classes selects which character classes participate in generation.
type Classes struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// AllClasses returns a Classes value with every class enabled.
func AllClasses() Classes {
	return Classes{Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
}

// EnabledCount returns the number of enabled classes.
func (c Classes) EnabledCount() int {
	count := 0
	for _, enabled := range []bool{c.Uppercase, c.Lowercase, c.Digits, c.Symbols} {
		if enabled {
			count++
		}
	}
	return count
}

// Sets returns the character set of each enabled class, in a stable order,
// optionally with ambiguous characters removed. Sets emptied by the filter are
// dropped.
func (c Classes) Sets(excludeAmbiguous bool) []string {
	var sets []string
	for _, candidate := range []struct {
		enabled bool
		chars   string
	}{
		{c.Lowercase, LowercaseChars},
		{c.Uppercase, UppercaseChars},
		{c.Digits, DigitChars},
		{c.Symbols, SymbolChars},
	} {
		if !candidate.enabled {
			continue
		}
		chars := candidate.chars
		if excludeAmbiguous {
			chars = filterAmbiguous(chars)
		}
		if chars != "" {
			sets = append(sets, chars)
		}
	}
	return sets
}

// Pool returns the union of all enabled character sets.
func (c Classes) Pool(excludeAmbiguous bool) string {
	return strings.Join(c.Sets(excludeAmbiguous), "")
}

// Params holds the parameters for a single password generation call.
type Params struct {
	// Length is the number of characters in the password.
	Length int
	// Classes selects the participating character classes.
	Classes Classes
	// ExcludeAmbiguous removes easily confused characters from every class.
	ExcludeAmbiguous bool
}

// DefaultParams returns the default password parameters: 12 characters drawn
// from all character classes.
func DefaultParams() Params {
	return Params{
		Length:  DefaultLength,
		Classes: AllClasses(),
	}
}

// Validate checks the parameters against the domain bounds.
func (p Params) Validate() error {
	if p.Length < MinLength || p.Length > MaxLength {
		return ErrInvalidLength
	}
	if p.Classes.EnabledCount() == 0 {
		return ErrNoCharacterClasses
	}
	if p.Classes.Pool(p.ExcludeAmbiguous) == "" {
		return ErrNoCharacterClasses
	}
	return nil
}

// filterAmbiguous removes ambiguous characters from the given set.
func filterAmbiguous(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		if !strings.ContainsRune(AmbiguousChars, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
