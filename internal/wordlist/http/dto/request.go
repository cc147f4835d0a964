// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/passgen/internal/wordlist/domain"
	"github.com/allisson/passgen/internal/wordlist/usecase"

	customValidation "github.com/allisson/passgen/internal/validation"
)

// CreateWordListRequest contains the parameters for creating a word list.
type CreateWordListRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Validate checks if the create word list request is valid.
func (r *CreateWordListRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.SlugName,
			validation.Length(1, domain.MaxNameLength),
		),
		validation.Field(&r.Words,
			validation.Required,
			validation.Length(1, domain.MaxWords),
		),
	)
}

// ToCreateInput converts the request to a use case input.
func (r *CreateWordListRequest) ToCreateInput() usecase.CreateWordListInput {
	return usecase.CreateWordListInput{
		Name:  r.Name,
		Words: r.Words,
	}
}

// UpdateWordListRequest contains the parameters for updating a word list.
type UpdateWordListRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// Validate checks if the update word list request is valid.
func (r *UpdateWordListRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			customValidation.SlugName,
			validation.Length(1, domain.MaxNameLength),
		),
		validation.Field(&r.Words,
			validation.Required,
			validation.Length(1, domain.MaxWords),
		),
	)
}

// ToUpdateInput converts the request to a use case input.
func (r *UpdateWordListRequest) ToUpdateInput() usecase.UpdateWordListInput {
	return usecase.UpdateWordListInput{
		Name:  r.Name,
		Words: r.Words,
	}
}
