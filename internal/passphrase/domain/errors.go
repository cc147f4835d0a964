package domain

import (
	"github.com/allisson/passgen/internal/errors"
)

var (
	// ErrEmptyPool indicates no words survived the configured length filters.
	ErrEmptyPool = errors.Wrap(errors.ErrInvalidInput, "word pool is empty after filtering")

	// ErrInsufficientWords indicates more unique words were requested than the pool holds.
	ErrInsufficientWords = errors.Wrap(errors.ErrInvalidInput, "word count exceeds pool size")

	// ErrInvalidWordCount indicates the requested word count is out of bounds.
	ErrInvalidWordCount = errors.Wrap(errors.ErrInvalidInput, "invalid word count")

	// ErrInvalidSeparator indicates the separator exceeds the maximum allowed length.
	ErrInvalidSeparator = errors.Wrap(errors.ErrInvalidInput, "invalid separator")

	// ErrInvalidLengthBounds indicates min/max word length filters are contradictory.
	ErrInvalidLengthBounds = errors.Wrap(errors.ErrInvalidInput, "invalid word length bounds")

	// ErrInvalidBatchSize indicates the batch count is out of bounds.
	ErrInvalidBatchSize = errors.Wrap(errors.ErrInvalidInput, "invalid batch size")
)
