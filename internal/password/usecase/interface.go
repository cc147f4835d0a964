// Package usecase implements password generation use cases.
package usecase

import (
	"context"
)

// GenerateInput holds the parameters for password generation.
type GenerateInput struct {
	Length           int
	IncludeUppercase bool
	IncludeLowercase bool
	IncludeDigits    bool
	IncludeSymbols   bool
	ExcludeAmbiguous bool
}

// UseCase defines the password generation operations.
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (string, error)
	GenerateBatch(ctx context.Context, input GenerateInput, count int) ([]string, error)
}
