package usecase

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	apperrors "github.com/allisson/passgen/internal/errors"
	"github.com/allisson/passgen/internal/wordlist/domain"
)

// ListReader is the subset of Repository needed for word source resolution.
type ListReader interface {
	GetByName(ctx context.Context, name string) (*domain.WordList, error)
}

// WordSourceResolver resolves the words backing a passphrase generation call.
// Precedence: caller-supplied words, then a stored word list, then the corpus
// file, then the built-in fallback list.
type WordSourceResolver struct {
	repo       ListReader
	corpusPath string
	logger     *slog.Logger

	mu          sync.RWMutex
	corpusWords []string
}

// NewWordSourceResolver creates a new WordSourceResolver. The repository may be
// nil when no database is configured; stored list lookups then fail with
// ErrWordListNotFound.
func NewWordSourceResolver(repo ListReader, corpusPath string, logger *slog.Logger) *WordSourceResolver {
	return &WordSourceResolver{
		repo:       repo,
		corpusPath: corpusPath,
		logger:     logger,
	}
}

// Resolve returns the candidate words for one generation call.
func (r *WordSourceResolver) Resolve(
	ctx context.Context,
	customWords []string,
	listName string,
) ([]string, error) {
	if len(customWords) > 0 {
		return customWords, nil
	}

	if listName != "" {
		if r.repo == nil {
			return nil, domain.ErrWordListNotFound
		}
		wordList, err := r.repo.GetByName(ctx, listName)
		if err != nil {
			return nil, err
		}
		return wordList.Words, nil
	}

	if r.corpusPath != "" {
		words, err := r.corpusWordsCached()
		if err != nil {
			// A missing or unreadable corpus file is not fatal; the fallback
			// list keeps generation working.
			r.logger.Warn("failed to load corpus file, using fallback list",
				slog.String("corpus_path", r.corpusPath),
				slog.Any("error", err),
			)
		} else if len(words) > 0 {
			return words, nil
		}
	}

	return domain.FallbackWords(), nil
}

// corpusWordsCached loads the corpus file once and caches the result.
func (r *WordSourceResolver) corpusWordsCached() ([]string, error) {
	r.mu.RLock()
	words := r.corpusWords
	r.mu.RUnlock()
	if words != nil {
		return words, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.corpusWords != nil {
		return r.corpusWords, nil
	}

	words, err := loadCorpusFile(r.corpusPath)
	if err != nil {
		return nil, err
	}
	r.corpusWords = words
	return words, nil
}

// loadCorpusFile reads a word corpus file: one word per line, blank lines and
// lines starting with '#' ignored.
func loadCorpusFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open corpus file")
	}
	defer func() { _ = file.Close() }()

	words := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to read corpus file")
	}

	return words, nil
}
