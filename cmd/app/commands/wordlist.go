package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	wordlistUsecase "github.com/allisson/passgen/internal/wordlist/usecase"
)

// RunCreateWordList creates a stored word list. Words are read from the given
// file, or from the input stream (one word per line) when no file is given.
//
// Requirements: Database must be migrated and accessible.
func RunCreateWordList(
	ctx context.Context,
	useCase wordlistUsecase.UseCase,
	logger *slog.Logger,
	name string,
	wordsFile string,
	io IOTuple,
) error {
	logger.Info("creating word list", slog.String("name", name))

	var words []string
	var err error

	if wordsFile != "" {
		words, err = readWordsFromFile(wordsFile)
	} else {
		words, err = readWords(io.Reader)
	}
	if err != nil {
		return fmt.Errorf("failed to read words: %w", err)
	}

	wordList, err := useCase.Create(ctx, wordlistUsecase.CreateWordListInput{
		Name:  name,
		Words: words,
	})
	if err != nil {
		return fmt.Errorf("failed to create word list: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "Word list %q created with %d words\n", wordList.Name, len(wordList.Words))

	return nil
}

// RunListWordLists prints the stored word lists with their word counts.
//
// Requirements: Database must be migrated and accessible.
func RunListWordLists(
	ctx context.Context,
	useCase wordlistUsecase.UseCase,
	logger *slog.Logger,
	io IOTuple,
) error {
	wordLists, err := useCase.List(ctx, 100, 0)
	if err != nil {
		return fmt.Errorf("failed to list word lists: %w", err)
	}

	if len(wordLists) == 0 {
		_, _ = fmt.Fprintln(io.Writer, "No word lists found")
		return nil
	}

	for _, wordList := range wordLists {
		_, _ = fmt.Fprintf(io.Writer, "%s\t%d words\t%s\n",
			wordList.Name,
			len(wordList.Words),
			wordList.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}

	logger.Debug("word lists listed", slog.Int("count", len(wordLists)))

	return nil
}

// RunDeleteWordList deletes a stored word list by name.
//
// Requirements: Database must be migrated and accessible.
func RunDeleteWordList(
	ctx context.Context,
	useCase wordlistUsecase.UseCase,
	logger *slog.Logger,
	name string,
	io IOTuple,
) error {
	logger.Info("deleting word list", slog.String("name", name))

	wordList, err := useCase.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to get word list: %w", err)
	}

	if err := useCase.Delete(ctx, wordList.ID); err != nil {
		return fmt.Errorf("failed to delete word list: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "Word list %q deleted\n", name)

	return nil
}

// readWordsFromFile reads one word per line from a file. Blank lines and
// lines starting with # are skipped.
func readWordsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return readWords(file)
}

// readWords reads one word per line from the reader. Blank lines and lines
// starting with # are skipped.
func readWords(reader io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
