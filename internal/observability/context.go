package observability

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

type contextKey string

const (
	traceIDBytes = 16 // OpenTelemetry trace ID size in bytes
	spanIDBytes  = 8  // OpenTelemetry span ID size in bytes
)

const (
	// TraceIDKey holds the OpenTelemetry trace ID.
	TraceIDKey contextKey = "trace_id"

	// SpanIDKey holds the OpenTelemetry span ID.
	SpanIDKey contextKey = "span_id"

	// RequestIDKey holds the unique request identifier.
	RequestIDKey contextKey = "request_id"

	// RateCardKey holds the rate card identifier for this request.
	RateCardKey contextKey = "rate_card_id"

	// PricingModelKey holds the pricing model applied in this request.
	PricingModelKey contextKey = "pricing_model"
)

// WithTraceID injects trace ID into context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithSpanID injects span ID into context.
func WithSpanID(ctx context.Context, spanID string) context.Context {
	return context.WithValue(ctx, SpanIDKey, spanID)
}

// WithRequestID injects request ID into context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithRateCard injects the rate card identifier into context.
func WithRateCard(ctx context.Context, rateCardID string) context.Context {
	return context.WithValue(ctx, RateCardKey, rateCardID)
}

// WithPricingModel injects the pricing model name into context.
func WithPricingModel(ctx context.Context, model string) context.Context {
	return context.WithValue(ctx, PricingModelKey, model)
}

// GetTraceID extracts trace ID from context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// GetSpanID extracts span ID from context.
func GetSpanID(ctx context.Context) string {
	if spanID, ok := ctx.Value(SpanIDKey).(string); ok {
		return spanID
	}
	return ""
}

// GetRequestID extracts request ID from context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetRateCard extracts the rate card identifier from context.
func GetRateCard(ctx context.Context) string {
	if rateCardID, ok := ctx.Value(RateCardKey).(string); ok {
		return rateCardID
	}
	return ""
}

// GetPricingModel extracts the pricing model name from context.
func GetPricingModel(ctx context.Context) string {
	if model, ok := ctx.Value(PricingModelKey).(string); ok {
		return model
	}
	return ""
}

// GenerateTraceID generates an OpenTelemetry-compatible trace ID (32 hex chars).
func GenerateTraceID() string {
	bytes := make([]byte, traceIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(bytes)
}

// GenerateSpanID generates an OpenTelemetry-compatible span ID (16 hex chars).
func GenerateSpanID() string {
	bytes := make([]byte, spanIDBytes)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.New().String()[:16]
	}
	return hex.EncodeToString(bytes)
}

// GenerateRequestID generates a unique request identifier (UUID).
func GenerateRequestID() string {
	return uuid.New().String()
}

// RequestIDOrGenerate returns an inbound request id when it looks sane, otherwise a fresh one.
func RequestIDOrGenerate(inbound string) string {
	if _, err := uuid.Parse(inbound); err == nil {
		return inbound
	}
	return GenerateRequestID()
}
