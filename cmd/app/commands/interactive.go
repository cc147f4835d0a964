package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	passphraseUsecase "github.com/allisson/passgen/internal/passphrase/usecase"
	passwordUsecase "github.com/allisson/passgen/internal/password/usecase"
)

// RunInteractive runs an interactive prompt loop for generating passphrases
// and passwords. The loop ends when the user quits or the input is exhausted.
func RunInteractive(
	ctx context.Context,
	passphraseUC passphraseUsecase.UseCase,
	passwordUC passwordUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
) error {
	reader := bufio.NewReader(io.Reader)
	writer := io.Writer

	_, _ = fmt.Fprintln(writer, "Interactive generator. Press enter to accept defaults.")

	for {
		_, _ = fmt.Fprint(writer, "\nGenerate a passphrase (p), a password (w), or quit (q)? [p]: ")
		choice, err := readLine(reader)
		if err != nil {
			// Input exhausted, leave the loop quietly.
			return nil
		}

		switch choice {
		case "", "p":
			if err := interactivePassphrase(ctx, passphraseUC, reader, io); err != nil {
				_, _ = fmt.Fprintf(writer, "error: %v\n", err)
			}
		case "w":
			if err := interactivePassword(ctx, passwordUC, reader, io); err != nil {
				_, _ = fmt.Fprintf(writer, "error: %v\n", err)
			}
		case "q":
			_, _ = fmt.Fprintln(writer, "Bye!")
			logger.Debug("interactive session finished")
			return nil
		default:
			_, _ = fmt.Fprintln(writer, "Please answer p, w or q.")
		}
	}
}

// interactivePassphrase prompts for passphrase settings and prints the result.
func interactivePassphrase(
	ctx context.Context,
	useCase passphraseUsecase.UseCase,
	reader *bufio.Reader,
	io IOTuple,
) error {
	writer := io.Writer

	wordCount, err := promptInt(reader, writer, "Word count", 4)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprint(writer, "Separator [-]: ")
	separator, err := readLine(reader)
	if err != nil {
		return fmt.Errorf("failed to read separator: %w", err)
	}
	if separator == "" {
		separator = "-"
	}

	passphrase, err := useCase.Generate(ctx, passphraseUsecase.GenerateInput{
		WordCount:  wordCount,
		Separator:  separator,
		Capitalize: true,
	})
	if err != nil {
		return fmt.Errorf("failed to generate passphrase: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "\n%s\n", passphrase)
	return nil
}

// interactivePassword prompts for password settings and prints the result.
func interactivePassword(
	ctx context.Context,
	useCase passwordUsecase.UseCase,
	reader *bufio.Reader,
	io IOTuple,
) error {
	writer := io.Writer

	length, err := promptInt(reader, writer, "Length", 12)
	if err != nil {
		return err
	}

	password, err := useCase.Generate(ctx, passwordUsecase.GenerateInput{
		Length:           length,
		IncludeUppercase: true,
		IncludeLowercase: true,
		IncludeDigits:    true,
		IncludeSymbols:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "\n%s\n", password)
	return nil
}

// promptInt prompts for an integer value with a default.
func promptInt(reader *bufio.Reader, writer io.Writer, label string, defaultValue int) (int, error) {
	_, _ = fmt.Fprintf(writer, "%s [%d]: ", label, defaultValue)

	line, err := readLine(reader)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if line == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", strings.ToLower(label), line)
	}
	return value, nil
}

// readLine reads a single trimmed line from the reader.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
