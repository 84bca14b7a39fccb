package domain

import (
	"context"
	"time"

	"github.com/davidbz/ratecard/internal/pricing"
)

// RateCardStore persists rate cards.
type RateCardStore interface {
	// Get retrieves a rate card by id. Missing cards yield ErrRateCardNotFound.
	Get(ctx context.Context, id string) (*RateCard, error)

	// Save creates or replaces a rate card.
	Save(ctx context.Context, card *RateCard) error

	// Delete removes a rate card. Missing cards yield ErrRateCardNotFound.
	Delete(ctx context.Context, id string) error

	// List returns every stored rate card.
	List(ctx context.Context) ([]*RateCard, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]any)
}

// MetricsRecorder records calculation metrics.
type MetricsRecorder interface {
	// RecordCalculation records a single calculation attempt.
	RecordCalculation(model pricing.ModelKind, err error, total float64, elapsed time.Duration)

	// RecordBatch records a completed batch.
	RecordBatch(summary pricing.BatchSummary, elapsed time.Duration)
}
