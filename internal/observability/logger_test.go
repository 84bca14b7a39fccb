package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/ratecard/internal/config"
	"github.com/davidbz/ratecard/internal/observability"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })
	return logs
}

func TestFromContext_AddsCorrelationFields(t *testing.T) {
	logs := observe(t)

	ctx := context.Background()
	ctx = observability.WithTraceID(ctx, "trace-1")
	ctx = observability.WithRequestID(ctx, "req-1")
	ctx = observability.WithRateCard(ctx, "card-1")
	ctx = observability.WithPricingModel(ctx, "Tiered")

	observability.FromContext(ctx).Info("quoted")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "trace-1", fields["trace_id"])
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "card-1", fields["rate_card_id"])
	require.Equal(t, "Tiered", fields["pricing_model"])
	require.NotContains(t, fields, "span_id")
}

func TestEventBus_Publish(t *testing.T) {
	logs := observe(t)

	ctx := observability.WithRateCard(context.Background(), "card-9")
	observability.NewEventBus(nil).Publish(ctx, "quote.calculated", map[string]any{
		"total_price": 12.5,
		"model":       "FlatRate",
	})

	entries := logs.FilterMessage("domain event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "quote.calculated", fields["event"])
	require.Equal(t, "card-9", fields["rate_card_id"])
	require.InDelta(t, 12.5, fields["total_price"], 1e-9)
}

func TestEventBus_PublishWithOwnLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	bus := observability.NewEventBus(zap.New(core))

	bus.Publish(observability.WithRequestID(context.Background(), "req-2"), "ratecard.saved", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "req-2", entries[0].ContextMap()["request_id"])
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

	logger, err := observability.InitLogger(&config.LogConfig{Level: "debug"})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = observability.InitLogger(&config.LogConfig{Level: "warn", Development: true})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = observability.InitLogger(&config.LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestRequestIDOrGenerate(t *testing.T) {
	const inbound = "7b0f6c0e-1f7a-4a53-9a0d-3c1e2f1d8e11"
	require.Equal(t, inbound, observability.RequestIDOrGenerate(inbound))

	generated := observability.RequestIDOrGenerate("not-a-uuid; DROP TABLE")
	require.NotEqual(t, "not-a-uuid; DROP TABLE", generated)
	require.Len(t, generated, 36)

	require.Len(t, observability.GenerateTraceID(), 32)
	require.Len(t, observability.GenerateSpanID(), 16)
}
