package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/allisson/passgen/internal/errors"
	"github.com/allisson/passgen/internal/passphrase/domain"
	"github.com/allisson/passgen/internal/passphrase/service"
	wordlistDomain "github.com/allisson/passgen/internal/wordlist/domain"
)

// PassphraseUseCase handles passphrase generation business logic.
type PassphraseUseCase struct {
	source    WordSource
	selector  service.Selector
	formatter service.Formatter
	logger    *slog.Logger
}

// NewPassphraseUseCase creates a new PassphraseUseCase.
func NewPassphraseUseCase(
	source WordSource,
	selector service.Selector,
	formatter service.Formatter,
	logger *slog.Logger,
) UseCase {
	return &PassphraseUseCase{
		source:    source,
		selector:  selector,
		formatter: formatter,
		logger:    logger,
	}
}

// Generate produces a single passphrase. The word source is resolved per call,
// so generation remains a pure function of its inputs plus crypto/rand.
func (uc *PassphraseUseCase) Generate(ctx context.Context, input GenerateInput) (string, error) {
	params := domain.Params{
		WordCount:      input.WordCount,
		Separator:      input.Separator,
		Capitalize:     input.Capitalize,
		IncludeNumbers: input.IncludeNumbers,
	}
	if params.WordCount == 0 {
		params.WordCount = domain.DefaultWordCount
	}

	if err := params.Validate(); err != nil {
		return "", err
	}

	pool, err := uc.buildPool(ctx, input)
	if err != nil {
		return "", err
	}

	selected, err := uc.selector.Select(pool, params.WordCount)
	if err != nil {
		return "", err
	}

	return uc.formatter.Format(selected, params)
}

// GenerateBatch produces count independent passphrases with the same parameters.
func (uc *PassphraseUseCase) GenerateBatch(
	ctx context.Context,
	input GenerateInput,
	count int,
) ([]string, error) {
	if count < 1 || count > domain.MaxBatchSize {
		return nil, domain.ErrInvalidBatchSize
	}

	passphrases := make([]string, 0, count)
	for i := 0; i < count; i++ {
		passphrase, err := uc.Generate(ctx, input)
		if err != nil {
			return nil, err
		}
		passphrases = append(passphrases, passphrase)
	}

	return passphrases, nil
}

// buildPool resolves the word source and constructs the filtered pool. When an
// implicit source (corpus or fallback) filters down to nothing, the built-in
// fallback list is retried with the same filters and finally unfiltered.
// Explicit sources (custom words, stored lists) surface ErrEmptyPool directly so
// the caller learns their input is unusable.
func (uc *PassphraseUseCase) buildPool(
	ctx context.Context,
	input GenerateInput,
) (*domain.WordPool, error) {
	words, err := uc.source.Resolve(ctx, input.Words, input.WordListName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to resolve word source")
	}

	pool, err := domain.NewWordPool(words, input.MinWordLength, input.MaxWordLength)
	if err == nil {
		return pool, nil
	}

	explicitSource := len(input.Words) > 0 || input.WordListName != ""
	if explicitSource || !apperrors.Is(err, domain.ErrEmptyPool) {
		return nil, err
	}

	uc.logger.Warn("word source empty after filtering, using fallback list",
		slog.Int("min_word_length", input.MinWordLength),
		slog.Int("max_word_length", input.MaxWordLength),
	)

	fallback := wordlistDomain.FallbackWords()
	pool, err = domain.NewWordPool(fallback, input.MinWordLength, input.MaxWordLength)
	if err == nil {
		return pool, nil
	}
	if !apperrors.Is(err, domain.ErrEmptyPool) {
		return nil, err
	}

	return domain.NewWordPool(fallback, 0, 0)
}
