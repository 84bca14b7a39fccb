package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/pricing"
)

var (
	// RequestDuration tracks HTTP request latency in milliseconds
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ratecard_request_duration_ms",
			Help:    "HTTP request duration in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"method", "route", "status"},
	)

	// RequestsTotal counts total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratecard_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// ConcurrentRequests tracks requests being processed simultaneously
	ConcurrentRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ratecard_concurrent_requests",
			Help: "Number of requests currently being processed",
		},
	)

	// CalculationsTotal counts calculations by model and outcome
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratecard_calculations_total",
			Help: "Total number of price calculations",
		},
		[]string{"model", "outcome"},
	)

	// CalculationDuration tracks engine latency in microseconds
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ratecard_calculation_duration_us",
			Help:    "Price calculation duration in microseconds",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 5000},
		},
		[]string{"model"},
	)

	// QuotedAmount sums successfully quoted totals
	QuotedAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratecard_quoted_amount_total",
			Help: "Sum of successfully quoted totals",
		},
		[]string{"model"},
	)

	// BatchSize tracks the number of items per batch
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ratecard_batch_size",
			Help:    "Number of items per batch",
			Buckets: []float64{1, 5, 10, 25, 50},
		},
	)

	// BatchFailedItems counts failed batch items
	BatchFailedItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ratecard_batch_failed_items_total",
			Help: "Total number of failed batch items",
		},
	)

	// BatchDuration tracks batch latency in milliseconds
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ratecard_batch_duration_ms",
			Help:    "Batch calculation duration in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)
)

// RecordRequest records a completed HTTP request
func RecordRequest(method, route, status string, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route, status).Observe(float64(duration.Milliseconds()))
}

// IncrementConcurrentRequests increments the concurrent requests gauge
func IncrementConcurrentRequests() {
	ConcurrentRequests.Inc()
}

// DecrementConcurrentRequests decrements the concurrent requests gauge
func DecrementConcurrentRequests() {
	ConcurrentRequests.Dec()
}

// Outcome classifies a calculation error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, pricing.ErrUnsupportedModel):
		return "unsupported_model"
	case errors.Is(err, pricing.ErrMalformedPricingData):
		return "malformed_pricing_data"
	case errors.Is(err, pricing.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

// Recorder implements domain.MetricsRecorder on the package collectors.
type Recorder struct{}

var _ domain.MetricsRecorder = Recorder{}

// NewRecorder creates a new Prometheus-backed recorder.
func NewRecorder() Recorder {
	return Recorder{}
}

// RecordCalculation records a single calculation attempt. A zero elapsed
// time skips the latency histogram.
func (Recorder) RecordCalculation(model pricing.ModelKind, err error, total float64, elapsed time.Duration) {
	label := modelLabel(model)
	CalculationsTotal.WithLabelValues(label, Outcome(err)).Inc()

	if elapsed > 0 {
		CalculationDuration.WithLabelValues(label).Observe(float64(elapsed.Microseconds()))
	}
	if err == nil && total > 0 {
		QuotedAmount.WithLabelValues(label).Add(total)
	}
}

// RecordBatch records a completed batch.
func (Recorder) RecordBatch(summary pricing.BatchSummary, elapsed time.Duration) {
	BatchSize.Observe(float64(summary.Total))
	BatchFailedItems.Add(float64(summary.Failed))
	BatchDuration.Observe(float64(elapsed.Milliseconds()))
}

// modelLabel keeps arbitrary caller-supplied model tags out of label values.
func modelLabel(model pricing.ModelKind) string {
	if model.IsKnown() {
		return model.String()
	}
	return "unknown"
}
