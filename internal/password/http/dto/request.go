// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/passgen/internal/password/domain"
	"github.com/allisson/passgen/internal/password/usecase"
)

// GeneratePasswordRequest contains the parameters for password generation.
// Character class flags default to enabled when absent.
type GeneratePasswordRequest struct {
	Length           int   `json:"length"`
	IncludeUppercase *bool `json:"include_uppercase"`
	IncludeLowercase *bool `json:"include_lowercase"`
	IncludeDigits    *bool `json:"include_digits"`
	IncludeSymbols   *bool `json:"include_symbols"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`
	Count            int   `json:"count"`
}

// Validate checks if the generate password request is valid.
func (r *GeneratePasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Length,
			validation.Min(0),
			validation.Max(domain.MaxLength),
		),
		validation.Field(&r.Count,
			validation.Min(0),
			validation.Max(domain.MaxBatchSize),
		),
	)
}

// ToGenerateInput converts the request to a use case input, applying defaults.
func (r *GeneratePasswordRequest) ToGenerateInput() usecase.GenerateInput {
	boolOrDefault := func(v *bool, def bool) bool {
		if v == nil {
			return def
		}
		return *v
	}

	return usecase.GenerateInput{
		Length:           r.Length,
		IncludeUppercase: boolOrDefault(r.IncludeUppercase, true),
		IncludeLowercase: boolOrDefault(r.IncludeLowercase, true),
		IncludeDigits:    boolOrDefault(r.IncludeDigits, true),
		IncludeSymbols:   boolOrDefault(r.IncludeSymbols, true),
		ExcludeAmbiguous: r.ExcludeAmbiguous,
	}
}

// BatchCount returns the number of passwords to generate, defaulting to one.
func (r *GeneratePasswordRequest) BatchCount() int {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}
