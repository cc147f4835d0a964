package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
)

// PassphraseOptions holds the command line options for passphrase generation.
type PassphraseOptions struct {
	WordCount      int
	Separator      string
	Capitalize     bool
	IncludeNumbers bool
	MinWordLength  int
	MaxWordLength  int
	WordList       string
	Count          int
	Format         string
}

// RunGeneratePassphrase generates one or more passphrases and writes them to
// the output. Outputs one passphrase per line in text format, or a JSON array
// in json format.
func RunGeneratePassphrase(
	ctx context.Context,
	useCase passphraseUsecase.UseCase,
	logger *slog.Logger,
	opts PassphraseOptions,
	io IOTuple,
) error {
	input := passphraseUsecase.GenerateInput{
		WordCount:      opts.WordCount,
		Separator:      opts.Separator,
		Capitalize:     opts.Capitalize,
		IncludeNumbers: opts.IncludeNumbers,
		MinWordLength:  opts.MinWordLength,
		MaxWordLength:  opts.MaxWordLength,
		WordListName:   opts.WordList,
	}

	count := opts.Count
	if count == 0 {
		count = 1
	}

	passphrases, err := useCase.GenerateBatch(ctx, input, count)
	if err != nil {
		return fmt.Errorf("failed to generate passphrases: %w", err)
	}

	if opts.Format == "json" {
		outputResultsJSON("passphrases", passphrases, io.Writer)
	} else {
		outputResultsText(passphrases, io.Writer)
	}

	logger.Debug("passphrases generated", slog.Int("count", len(passphrases)))

	return nil
}

// outputResultsText writes one generated value per line.
func outputResultsText(results []string, writer io.Writer) {
	for _, result := range results {
		_, _ = fmt.Fprintln(writer, result)
	}
}

// outputResultsJSON writes the generated values as a JSON object with the
// given key for machine consumption.
func outputResultsJSON(key string, results []string, writer io.Writer) {
	jsonBytes, err := json.MarshalIndent(map[string][]string{key: results}, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
