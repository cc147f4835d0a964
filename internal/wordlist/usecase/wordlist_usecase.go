package usecase

import (
	"context"
	"log/slog"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/passgen/internal/database"
	"github.com/allisson/passgen/internal/wordlist/domain"

	appValidation "github.com/allisson/passgen/internal/validation"
)

// WordListUseCase handles word list management business logic.
type WordListUseCase struct {
	txManager database.TxManager
	repo      Repository
	logger    *slog.Logger
}

// NewWordListUseCase creates a new WordListUseCase.
func NewWordListUseCase(txManager database.TxManager, repo Repository, logger *slog.Logger) UseCase {
	return &WordListUseCase{
		txManager: txManager,
		repo:      repo,
		logger:    logger,
	}
}

// validateName validates a word list name using jellydator/validation.
func validateName(name string) error {
	err := validation.Validate(name,
		validation.Required.Error("name is required"),
		appValidation.NotBlank,
		appValidation.SlugName,
		validation.Length(1, domain.MaxNameLength).Error("name is too long"),
	)
	return appValidation.WrapValidationError(err)
}

// Create stores a new word list. Words are normalized before persistence:
// lowercased, trimmed, deduplicated.
func (uc *WordListUseCase) Create(ctx context.Context, input CreateWordListInput) (*domain.WordList, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	wordList := &domain.WordList{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  input.Name,
		Words: domain.NormalizeWords(input.Words),
	}
	if err := wordList.Validate(); err != nil {
		return nil, err
	}

	err := uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return uc.repo.Create(txCtx, wordList)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("word list created",
		slog.String("word_list_id", wordList.ID.String()),
		slog.String("name", wordList.Name),
		slog.Int("word_count", len(wordList.Words)),
	)

	return uc.repo.GetByID(ctx, wordList.ID)
}

// GetByID retrieves a word list by ID.
func (uc *WordListUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error) {
	return uc.repo.GetByID(ctx, id)
}

// GetByName retrieves a word list by name.
func (uc *WordListUseCase) GetByName(ctx context.Context, name string) (*domain.WordList, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return uc.repo.GetByName(ctx, name)
}

// List retrieves word lists with pagination.
func (uc *WordListUseCase) List(ctx context.Context, limit, offset int) ([]*domain.WordList, error) {
	return uc.repo.List(ctx, limit, offset)
}

// Update replaces the name and words of an existing word list.
func (uc *WordListUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateWordListInput,
) (*domain.WordList, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	err := uc.txManager.WithTx(ctx, func(txCtx context.Context) error {
		wordList, err := uc.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		wordList.Name = input.Name
		wordList.Words = domain.NormalizeWords(input.Words)
		if err := wordList.Validate(); err != nil {
			return err
		}

		return uc.repo.Update(txCtx, wordList)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("word list updated", slog.String("word_list_id", id.String()))

	return uc.repo.GetByID(ctx, id)
}

// Delete removes a word list by ID.
func (uc *WordListUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("word list deleted", slog.String("word_list_id", id.String()))
	return nil
}
