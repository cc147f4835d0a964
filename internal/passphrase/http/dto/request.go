// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/passgen/internal/passphrase/domain"
	"github.com/allisson/passgen/internal/passphrase/usecase"
)

// GeneratePassphraseRequest contains the parameters for passphrase generation.
// Absent fields fall back to the domain defaults: four words, "-" separator,
// capitalized words.
type GeneratePassphraseRequest struct {
	WordCount      int      `json:"word_count"`
	Separator      *string  `json:"separator"`
	Capitalize     *bool    `json:"capitalize"`
	IncludeNumbers bool     `json:"include_numbers"`
	MinWordLength  int      `json:"min_word_length"`
	MaxWordLength  int      `json:"max_word_length"`
	Words          []string `json:"words"`
	WordList       string   `json:"word_list"`
	Count          int      `json:"count"`
}

// Validate checks if the generate passphrase request is valid.
func (r *GeneratePassphraseRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.WordCount,
			validation.Min(0),
			validation.Max(domain.MaxWordCount),
		),
		validation.Field(&r.Separator,
			validation.Length(0, domain.MaxSeparatorLength),
		),
		validation.Field(&r.MinWordLength, validation.Min(0)),
		validation.Field(&r.MaxWordLength, validation.Min(0)),
		validation.Field(&r.Count,
			validation.Min(0),
			validation.Max(domain.MaxBatchSize),
		),
	)
}

// ToGenerateInput converts the request to a use case input, applying defaults.
func (r *GeneratePassphraseRequest) ToGenerateInput() usecase.GenerateInput {
	separator := domain.DefaultSeparator
	if r.Separator != nil {
		separator = *r.Separator
	}

	capitalize := true
	if r.Capitalize != nil {
		capitalize = *r.Capitalize
	}

	minLength := r.MinWordLength
	maxLength := r.MaxWordLength
	if minLength == 0 && maxLength == 0 && len(r.Words) == 0 && r.WordList == "" {
		minLength = domain.DefaultMinWordLength
		maxLength = domain.DefaultMaxWordLength
	}

	return usecase.GenerateInput{
		WordCount:      r.WordCount,
		Separator:      separator,
		Capitalize:     capitalize,
		IncludeNumbers: r.IncludeNumbers,
		MinWordLength:  minLength,
		MaxWordLength:  maxLength,
		Words:          r.Words,
		WordListName:   r.WordList,
	}
}

// BatchCount returns the number of passphrases to generate, defaulting to one.
func (r *GeneratePassphraseRequest) BatchCount() int {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}
