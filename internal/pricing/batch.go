package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxBatchSize is the largest number of requests a single batch may carry.
	MaxBatchSize = 50

	defaultBatchConcurrency = 8
)

// BatchRequest is one item of a batch. Label is opaque and echoed back.
type BatchRequest struct {
	Label       string           `json:"label,omitempty"`
	Model       ModelKind        `json:"model"`
	PricingData PricingData      `json:"pricingData"`
	Input       CalculationInput `json:"input"`
}

// BatchOutcome is the result of one batch item: either Result or Error is set.
type BatchOutcome struct {
	Index   int                `json:"index"`
	Label   string             `json:"label,omitempty"`
	Success bool               `json:"success"`
	Result  *CalculationResult `json:"result,omitempty"`
	Error   string             `json:"error,omitempty"`
	Request BatchRequest       `json:"request"`

	err error
}

// Err returns the underlying calculation error of a failed outcome.
func (o BatchOutcome) Err() error {
	return o.err
}

// BatchSummary aggregates a batch run.
type BatchSummary struct {
	Total       int     `json:"total"`
	Successful  int     `json:"successful"`
	Failed      int     `json:"failed"`
	TotalAmount float64 `json:"totalAmount"`
}

// BatchResult holds per-item outcomes in input order plus the summary.
type BatchResult struct {
	Results []BatchOutcome `json:"results"`
	Summary BatchSummary   `json:"summary"`
}

// Orchestrator fans batch requests out over an Engine.
type Orchestrator struct {
	engine      *Engine
	concurrency int
}

// NewOrchestrator creates an orchestrator running at most concurrency items at once.
func NewOrchestrator(engine *Engine, concurrency int) *Orchestrator {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}
	return &Orchestrator{
		engine:      engine,
		concurrency: concurrency,
	}
}

// CheckBatchSize enforces the batch-level preconditions.
func CheckBatchSize(n int) error {
	if n == 0 {
		return ErrEmptyBatch
	}
	if n > MaxBatchSize {
		return fmt.Errorf("%w: got %d requests, maximum is %d", ErrBatchTooLarge, n, MaxBatchSize)
	}
	return nil
}

// RunBatch calculates every request independently. Per-item failures are
// recorded in the outcome; only an empty or oversized batch fails the call.
func (o *Orchestrator) RunBatch(requests []BatchRequest) (*BatchResult, error) {
	if err := CheckBatchSize(len(requests)); err != nil {
		return nil, err
	}

	outcomes := make([]BatchOutcome, len(requests))

	var group errgroup.Group
	group.SetLimit(o.concurrency)

	for i, req := range requests {
		group.Go(func() error {
			outcomes[i] = o.runOne(i, req)
			return nil
		})
	}
	_ = group.Wait()

	return &BatchResult{
		Results: outcomes,
		Summary: summarize(outcomes),
	}, nil
}

func (o *Orchestrator) runOne(index int, req BatchRequest) (outcome BatchOutcome) {
	outcome = BatchOutcome{Index: index, Label: req.Label, Request: req}

	defer func() {
		if p := recover(); p != nil {
			outcome.Success = false
			outcome.Result = nil
			outcome.err = fmt.Errorf("%w: %v", ErrMalformedPricingData, p)
			outcome.Error = outcome.err.Error()
		}
	}()

	result, err := o.engine.Calculate(req.Model, req.PricingData, req.Input)
	if err != nil {
		outcome.err = err
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.Result = result
	return outcome
}

func summarize(outcomes []BatchOutcome) BatchSummary {
	summary := BatchSummary{Total: len(outcomes)}
	amount := decimal.Zero

	for _, outcome := range outcomes {
		if !outcome.Success {
			summary.Failed++
			continue
		}
		summary.Successful++
		amount = amount.Add(decimal.NewFromFloat(outcome.Result.TotalPrice))
	}

	summary.TotalAmount = roundCents(amount).InexactFloat64()
	return summary
}
