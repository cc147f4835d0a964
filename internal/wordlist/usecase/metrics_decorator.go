package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/passgen/internal/metrics"
	"github.com/allisson/passgen/internal/wordlist/domain"
)

// wordListUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type wordListUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewWordListUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewWordListUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &wordListUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration histogram for one call.
func (w *wordListUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	w.metrics.RecordOperation(ctx, "wordlist", operation, status)
	w.metrics.RecordDuration(ctx, "wordlist", operation, time.Since(start), status)
}

func (w *wordListUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateWordListInput,
) (*domain.WordList, error) {
	start := time.Now()
	wordList, err := w.next.Create(ctx, input)
	w.record(ctx, "create", start, err)
	return wordList, err
}

func (w *wordListUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.WordList, error) {
	start := time.Now()
	wordList, err := w.next.GetByID(ctx, id)
	w.record(ctx, "get_by_id", start, err)
	return wordList, err
}

func (w *wordListUseCaseWithMetrics) GetByName(ctx context.Context, name string) (*domain.WordList, error) {
	start := time.Now()
	wordList, err := w.next.GetByName(ctx, name)
	w.record(ctx, "get_by_name", start, err)
	return wordList, err
}

func (w *wordListUseCaseWithMetrics) List(
	ctx context.Context,
	limit, offset int,
) ([]*domain.WordList, error) {
	start := time.Now()
	wordLists, err := w.next.List(ctx, limit, offset)
	w.record(ctx, "list", start, err)
	return wordLists, err
}

func (w *wordListUseCaseWithMetrics) Update(
	ctx context.Context,
	id uuid.UUID,
	input UpdateWordListInput,
) (*domain.WordList, error) {
	start := time.Now()
	wordList, err := w.next.Update(ctx, id, input)
	w.record(ctx, "update", start, err)
	return wordList, err
}

func (w *wordListUseCaseWithMetrics) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := w.next.Delete(ctx, id)
	w.record(ctx, "delete", start, err)
	return err
}
