package domain

import (
	"github.com/allisson/passgen/internal/errors"
)

var (
	// ErrInvalidLength indicates the requested password length is out of bounds.
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid password length")

	// ErrNoCharacterClasses indicates no character class is enabled.
	ErrNoCharacterClasses = errors.Wrap(errors.ErrInvalidInput, "at least one character class must be enabled")

	// ErrInvalidBatchSize indicates the batch count is out of bounds.
	ErrInvalidBatchSize = errors.Wrap(errors.ErrInvalidInput, "invalid batch size")
)
