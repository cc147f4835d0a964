package domain

import (
	"github.com/allisson/passgen/internal/errors"
)

var (
	// ErrWordListNotFound indicates the requested word list does not exist.
	ErrWordListNotFound = errors.Wrap(errors.ErrNotFound, "word list not found")

	// ErrWordListAlreadyExists indicates a word list with the same name already exists.
	ErrWordListAlreadyExists = errors.Wrap(errors.ErrConflict, "word list already exists")

	// ErrInvalidName indicates the word list name is blank or too long.
	ErrInvalidName = errors.Wrap(errors.ErrInvalidInput, "invalid word list name")

	// ErrEmptyWordList indicates the word list contains no usable words.
	ErrEmptyWordList = errors.Wrap(errors.ErrInvalidInput, "word list has no words")

	// ErrTooManyWords indicates the word list exceeds the maximum size.
	ErrTooManyWords = errors.Wrap(errors.ErrInvalidInput, "word list exceeds maximum size")
)
