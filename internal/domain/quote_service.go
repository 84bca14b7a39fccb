package domain

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/ratecard/internal/observability"
	"github.com/davidbz/ratecard/internal/pricing"
)

// Event types published by QuoteService.
const (
	EventRateCardSaved   = "ratecard.saved"
	EventRateCardDeleted = "ratecard.deleted"
	EventQuoteCalculated = "quote.calculated"
	EventQuoteFailed     = "quote.failed"
	EventBatchCompleted  = "batch.completed"
)

// QuoteService manages rate cards and prices inputs against them.
type QuoteService struct {
	store        RateCardStore
	engine       *pricing.Engine
	orchestrator *pricing.Orchestrator
	events       EventPublisher
	metrics      MetricsRecorder
	now          func() time.Time
}

// NewQuoteService creates a new quote service (DI constructor).
func NewQuoteService(
	store RateCardStore,
	engine *pricing.Engine,
	orchestrator *pricing.Orchestrator,
	events EventPublisher,
	metrics MetricsRecorder,
) *QuoteService {
	if engine == nil {
		engine = pricing.NewEngine(nil)
	}
	if orchestrator == nil {
		orchestrator = pricing.NewOrchestrator(engine, 0)
	}
	if events == nil {
		events = noopPublisher{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &QuoteService{
		store:        store,
		engine:       engine,
		orchestrator: orchestrator,
		events:       events,
		metrics:      metrics,
		now:          time.Now,
	}
}

// Models lists the supported pricing models.
func (s *QuoteService) Models() []pricing.ModelKind {
	return s.engine.Kinds()
}

// ValidatePricing runs the pre-flight structural check for data under model.
func (s *QuoteService) ValidatePricing(ctx context.Context, model string, data pricing.PricingData) ValidationReport {
	kind, err := pricing.ParseModelKind(model)
	if err != nil {
		return ValidationReport{
			Model:  pricing.ModelKind(model),
			Valid:  false,
			Issues: []pricing.ValidationIssue{{Path: "(root)", Message: err.Error()}},
		}
	}

	issues := s.engine.Issues(kind, data)
	report := ValidationReport{
		Model:  kind,
		Valid:  len(issues) == 0,
		Issues: issues,
	}

	observability.FromContext(ctx).Debug("pricing data validated",
		observability.String("model", kind.String()),
		observability.Bool("valid", report.Valid),
		observability.Int("issues", len(issues)))

	return report
}

// SaveRateCard validates and stores card. A missing id creates a new card;
// an existing card keeps its creation time and its pricing model.
func (s *QuoteService) SaveRateCard(ctx context.Context, card *RateCard) (*RateCard, error) {
	if card == nil {
		return nil, fmt.Errorf("%w: rate card cannot be nil", ErrInvalidRateCard)
	}

	card = card.Clone()
	card.Name = strings.TrimSpace(card.Name)
	if card.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidRateCard)
	}

	kind, err := pricing.ParseModelKind(card.Model.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRateCard, err)
	}
	card.Model = kind

	if issues := s.engine.Issues(kind, card.PricingData); len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	now := s.now().UTC()
	card.CreatedAt = now

	if card.ID == "" {
		card.ID = uuid.NewString()
	} else {
		existing, getErr := s.store.Get(ctx, card.ID)
		switch {
		case getErr == nil:
			if existing.Model != card.Model {
				return nil, fmt.Errorf("%w: %s is %s", ErrModelImmutable, card.ID, existing.Model)
			}
			card.CreatedAt = existing.CreatedAt
		case errors.Is(getErr, ErrRateCardNotFound):
		default:
			return nil, fmt.Errorf("failed to load rate card: %w", getErr)
		}
	}
	card.UpdatedAt = now

	if err := s.store.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save rate card: %w", err)
	}

	ctx = observability.WithRateCard(ctx, card.ID)
	observability.FromContext(ctx).Info("rate card saved",
		observability.String("name", card.Name),
		observability.String("model", card.Model.String()))
	s.events.Publish(ctx, EventRateCardSaved, map[string]any{
		"rate_card_id": card.ID,
		"model":        card.Model.String(),
	})

	return card, nil
}

// GetRateCard retrieves a rate card by id.
func (s *QuoteService) GetRateCard(ctx context.Context, id string) (*RateCard, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id cannot be empty", ErrRateCardNotFound)
	}

	card, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate card: %w", err)
	}
	return card, nil
}

// ListRateCards returns every rate card, oldest first.
func (s *QuoteService) ListRateCards(ctx context.Context) ([]*RateCard, error) {
	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate cards: %w", err)
	}

	slices.SortFunc(cards, func(a, b *RateCard) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return cards, nil
}

// DeleteRateCard removes a rate card.
func (s *QuoteService) DeleteRateCard(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rate card: %w", err)
	}

	ctx = observability.WithRateCard(ctx, id)
	observability.FromContext(ctx).Info("rate card deleted")
	s.events.Publish(ctx, EventRateCardDeleted, map[string]any{"rate_card_id": id})
	return nil
}

// Quote prices input against a stored rate card.
func (s *QuoteService) Quote(ctx context.Context, cardID string, input pricing.CalculationInput) (*pricing.CalculationResult, error) {
	card, err := s.GetRateCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	ctx = observability.WithRateCard(ctx, card.ID)
	return s.calculate(ctx, card.Model, card.PricingData, input)
}

// QuoteInline prices input against pricing data supplied by the caller.
func (s *QuoteService) QuoteInline(
	ctx context.Context,
	model string,
	data pricing.PricingData,
	input pricing.CalculationInput,
) (*pricing.CalculationResult, error) {
	kind, err := pricing.ParseModelKind(model)
	if err != nil {
		s.metrics.RecordCalculation(pricing.ModelKind(model), err, 0, 0)
		return nil, err
	}
	return s.calculate(ctx, kind, data, input)
}

// QuoteBatch prices every item against one stored rate card.
func (s *QuoteService) QuoteBatch(ctx context.Context, cardID string, items []BatchItem) (*pricing.BatchResult, error) {
	if err := pricing.CheckBatchSize(len(items)); err != nil {
		return nil, err
	}

	card, err := s.GetRateCard(ctx, cardID)
	if err != nil {
		return nil, err
	}

	requests := make([]pricing.BatchRequest, len(items))
	for i, item := range items {
		requests[i] = pricing.BatchRequest{
			Label:       item.Label,
			Model:       card.Model,
			PricingData: card.PricingData,
			Input:       item.Input,
		}
	}

	ctx = observability.WithRateCard(ctx, card.ID)
	return s.runBatch(ctx, requests)
}

// QuoteBatchInline prices a batch of self-contained requests.
func (s *QuoteService) QuoteBatchInline(ctx context.Context, requests []pricing.BatchRequest) (*pricing.BatchResult, error) {
	return s.runBatch(ctx, requests)
}

func (s *QuoteService) calculate(
	ctx context.Context,
	kind pricing.ModelKind,
	data pricing.PricingData,
	input pricing.CalculationInput,
) (*pricing.CalculationResult, error) {
	ctx = observability.WithPricingModel(ctx, kind.String())
	logger := observability.FromContext(ctx)

	start := time.Now()
	result, err := s.engine.Calculate(kind, data, input)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.RecordCalculation(kind, err, 0, elapsed)
		logger.Warn("calculation failed", observability.Error(err))
		s.events.Publish(ctx, EventQuoteFailed, map[string]any{
			"model": kind.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	s.metrics.RecordCalculation(kind, nil, result.TotalPrice, elapsed)
	logger.Info("calculation completed",
		observability.Float64("quantity", input.Quantity),
		observability.Float64("total_price", result.TotalPrice),
		observability.Duration("elapsed", elapsed))
	s.events.Publish(ctx, EventQuoteCalculated, map[string]any{
		"model":       kind.String(),
		"total_price": result.TotalPrice,
	})

	return result, nil
}

func (s *QuoteService) runBatch(ctx context.Context, requests []pricing.BatchRequest) (*pricing.BatchResult, error) {
	logger := observability.FromContext(ctx)

	start := time.Now()
	result, err := s.orchestrator.RunBatch(requests)
	if err != nil {
		logger.Warn("batch rejected",
			observability.Int("size", len(requests)),
			observability.Error(err))
		return nil, err
	}
	elapsed := time.Since(start)

	for _, outcome := range result.Results {
		total := 0.0
		if outcome.Result != nil {
			total = outcome.Result.TotalPrice
		}
		s.metrics.RecordCalculation(outcome.Request.Model, outcome.Err(), total, 0)
	}
	s.metrics.RecordBatch(result.Summary, elapsed)

	logger.Info("batch completed",
		observability.Int("total", result.Summary.Total),
		observability.Int("successful", result.Summary.Successful),
		observability.Int("failed", result.Summary.Failed),
		observability.Float64("total_amount", result.Summary.TotalAmount),
		observability.Duration("elapsed", elapsed))
	s.events.Publish(ctx, EventBatchCompleted, map[string]any{
		"total":        result.Summary.Total,
		"successful":   result.Summary.Successful,
		"failed":       result.Summary.Failed,
		"total_amount": result.Summary.TotalAmount,
	})

	return result, nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, map[string]any) {}

type noopMetrics struct{}

func (noopMetrics) RecordCalculation(pricing.ModelKind, error, float64, time.Duration) {}

func (noopMetrics) RecordBatch(pricing.BatchSummary, time.Duration) {}
