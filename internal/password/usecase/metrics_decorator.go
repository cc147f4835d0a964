package usecase

import (
	"context"
	"time"

	"github.com/allisson/passgen/internal/metrics"
)

// passwordUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type passwordUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewPasswordUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewPasswordUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &passwordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for single password generation.
func (p *passwordUseCaseWithMetrics) Generate(
	ctx context.Context,
	input GenerateInput,
) (string, error) {
	start := time.Now()
	password, err := p.next.Generate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "password", "generate", status)
	p.metrics.RecordDuration(ctx, "password", "generate", time.Since(start), status)

	return password, err
}

// GenerateBatch records metrics for batch password generation.
func (p *passwordUseCaseWithMetrics) GenerateBatch(
	ctx context.Context,
	input GenerateInput,
	count int,
) ([]string, error) {
	start := time.Now()
	passwords, err := p.next.GenerateBatch(ctx, input, count)

	status := "success"
	if err != nil {
		status = "error"
	}

	p.metrics.RecordOperation(ctx, "password", "generate_batch", status)
	p.metrics.RecordDuration(ctx, "password", "generate_batch", time.Since(start), status)

	return passwords, err
}
