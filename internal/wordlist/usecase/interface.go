// Package usecase implements word list management business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/passgen/internal/wordlist/domain"
)

// CreateWordListInput contains the input data for word list creation.
type CreateWordListInput struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// UpdateWordListInput contains the input data for word list updates.
type UpdateWordListInput struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// UseCase defines the interface for word list business logic operations.
type UseCase interface {
	Create(ctx context.Context, input CreateWordListInput) (*domain.WordList, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error)
	GetByName(ctx context.Context, name string) (*domain.WordList, error)
	List(ctx context.Context, limit, offset int) ([]*domain.WordList, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateWordListInput) (*domain.WordList, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Repository interface defines word list repository operations.
type Repository interface {
	Create(ctx context.Context, wordList *domain.WordList) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error)
	GetByName(ctx context.Context, name string) (*domain.WordList, error)
	List(ctx context.Context, limit, offset int) ([]*domain.WordList, error)
	Update(ctx context.Context, wordList *domain.WordList) error
	Delete(ctx context.Context, id uuid.UUID) error
}
