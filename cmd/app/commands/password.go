package commands

import (
	"context"
	"fmt"
	"log/slog"

	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"
)

// PasswordOptions holds the command line options for password generation.
// The No* flags disable character classes that are enabled by default.
type PasswordOptions struct {
	Length           int
	NoUppercase      bool
	NoLowercase      bool
	NoDigits         bool
	NoSymbols        bool
	ExcludeAmbiguous bool
	Count            int
	Format           string
}

// RunGeneratePassword generates one or more random passwords and writes them
// to the output. Outputs one password per line in text format, or a JSON
// array in json format.
func RunGeneratePassword(
	ctx context.Context,
	useCase passwordUsecase.UseCase,
	logger *slog.Logger,
	opts PasswordOptions,
	io IOTuple,
) error {
	input := passwordUsecase.GenerateInput{
		Length:           opts.Length,
		IncludeUppercase: !opts.NoUppercase,
		IncludeLowercase: !opts.NoLowercase,
		IncludeDigits:    !opts.NoDigits,
		IncludeSymbols:   !opts.NoSymbols,
		ExcludeAmbiguous: opts.ExcludeAmbiguous,
	}

	count := opts.Count
	if count == 0 {
		count = 1
	}

	passwords, err := useCase.GenerateBatch(ctx, input, count)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}

	if opts.Format == "json" {
		outputResultsJSON("passwords", passwords, io.Writer)
	} else {
		outputResultsText(passwords, io.Writer)
	}

	logger.Debug("passwords generated", slog.Int("count", len(passwords)))

	return nil
}
