package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketbot/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newManualProvider(t *testing.T) (*MetricsProvider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := NewMetricsProvider(config.NewTestConfig())
	mp.meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	mp.meter = mp.meterProvider.Meter("ticketbot-test")
	require.NoError(t, mp.createInstruments())
	mp.initialized = true

	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestMetricsProvider_Disabled(t *testing.T) {
	t.Parallel()

	mp := NewMetricsProvider(config.NewTestConfig())
	require.NoError(t, mp.Initialize(context.Background()))

	// Recording without instruments is a no-op
	assert.NotPanics(t, func() {
		mp.RecordCommand("close", nil)
		mp.RecordTicketOpened(context.Background(), 1)
		mp.RecordDatabasePing(time.Millisecond)
	})

	var nilProvider *MetricsProvider
	assert.NotPanics(t, func() { nilProvider.RecordTicketClosed(context.Background(), 1, true) })
}

func TestMetricsProvider_NoneExporter(t *testing.T) {
	t.Parallel()

	cfg := config.NewTestConfig()
	cfg.OTelEnabled = true
	cfg.OTelExporterType = "none"

	mp := NewMetricsProvider(cfg)
	require.NoError(t, mp.Initialize(context.Background()))
	assert.False(t, mp.isEnabled())
}

func TestMetricsProvider_UnknownExporter(t *testing.T) {
	t.Parallel()

	cfg := config.NewTestConfig()
	cfg.OTelEnabled = true
	cfg.OTelExporterType = "zipkin"

	assert.Error(t, NewMetricsProvider(cfg).Initialize(context.Background()))
}

func TestMetricsProvider_Counters(t *testing.T) {
	t.Parallel()

	mp, reader := newManualProvider(t)
	ctx := context.Background()

	mp.RecordTicketOpened(ctx, 1)
	mp.RecordTicketOpened(ctx, 2)
	mp.RecordTicketClosed(ctx, 1, true)
	mp.RecordPanelCreated(ctx, 1)
	mp.RecordCommand("configure", nil)
	mp.RecordCommand("configure", errors.New("denied"))
	mp.RecordNATSMessagePublished("ticket_opened")

	assert.Equal(t, int64(2), collectSum(t, reader, TicketsOpenedTotal))
	assert.Equal(t, int64(1), collectSum(t, reader, TicketsClosedTotal))
	assert.Equal(t, int64(1), collectSum(t, reader, PanelsCreatedTotal))
	assert.Equal(t, int64(2), collectSum(t, reader, CommandsTotal))
	assert.Equal(t, int64(1), collectSum(t, reader, NATSMessagesPublishedTotal))
}
