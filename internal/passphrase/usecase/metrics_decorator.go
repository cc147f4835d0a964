package usecase

import (
	"context"
	"time"

	"github.com/allisson/passgen/internal/metrics"
)

// passphraseUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type passphraseUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewPassphraseUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewPassphraseUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &passphraseUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for single passphrase generation.
func (p *passphraseUseCaseWithMetrics) Generate(
	ctx context.Context,
	input GenerateInput,
) (string, error) {
	start := time.Now()
	passphrase, err := p.next.Generate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "passphrase", "generate", status)
	p.metrics.RecordDuration(ctx, "passphrase", "generate", time.Since(start), status)

	return passphrase, err
}

// GenerateBatch records metrics for batch passphrase generation.
func (p *passphraseUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	input GenerateInput,
	count int,
) ([]string, error) {
	start := time.Now()
	passphrases, err := p.next.GenerateBatch(ctx, input, count)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "passphrase", "generate_batch", status)
	p.metrics.RecordDuration(ctx, "passphrase", "generate_batch", time.Since(start), status)

	return passphrases, err
}
