package usecase

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/passgen/internal/password/domain"
	"github.com/allisson/passgen/internal/password/service"
)

// PasswordUseCase handles password generation business logic.
type PasswordUseCase struct {
	generator service.Generator
	logger    *slog.Logger
}

// NewPasswordUseCase creates a new PasswordUseCase.
func NewPasswordUseCase(generator service.Generator, logger *slog.Logger) UseCase {
	return &PasswordUseCase{
		generator: generator,
		logger:    logger,
	}
}

// Generate produces a single password. A zero Length means the default length.
func (uc *PasswordUseCase) Generate(_ context.Context, input GenerateInput) (string, error) {
	params := domain.Params{
		Length: input.Length,
		Classes: domain.Classes{
			Uppercase: input.IncludeUppercase,
			Lowercase: input.IncludeLowercase,
			Digits:    input.IncludeDigits,
			Symbols:   input.IncludeSymbols,
		},
		ExcludeAmbiguous: input.ExcludeAmbiguous,
	}
	if params.Length == 0 {
		params.Length = domain.DefaultLength
	}

	return uc.generator.Generate(params)
}

// GenerateBatch produces count independent passwords with the same parameters.
// Generation is CPU and entropy bound, so the batch is filled concurrently
// while keeping a stable output order.
func (uc *PasswordUseCase) GenerateBatch(
	ctx context.Context,
	input GenerateInput,
	count int,
) ([]string, error) {
	if count < 1 || count > domain.MaxBatchSize {
		return nil, domain.ErrInvalidBatchSize
	}

	passwords := make([]string, count)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < count; i++ {
		group.Go(func() error {
			password, err := uc.Generate(ctx, input)
			if err != nil {
				return err
			}
			passwords[i] = password
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return passwords, nil
}
