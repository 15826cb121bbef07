package observability

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"ticketbot/config"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// MetricsProvider manages OpenTelemetry metrics for the ticket bot
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	mu            sync.RWMutex

	// Metric instruments
	commandsCounter              metric.Int64Counter
	interactionsCounter          metric.Int64Counter
	panelsCreatedCounter         metric.Int64Counter
	ticketsOpenedCounter         metric.Int64Counter
	ticketsClosedCounter         metric.Int64Counter
	natsMessagesPublishedCounter metric.Int64Counter
	databasePingHist             metric.Float64Histogram
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// Initialize sets up the OpenTelemetry metrics provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		log.Debug("Metrics provider already initialized")
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Info("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.OTelServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdkmetric.Exporter
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err = stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		log.Info("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err = otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		log.WithField("endpoint", mp.config.OTelOTLPEndpoint).Info("Using OTLP metric exporter")

	case "none":
		log.Info("Metrics export disabled (exporter_type='none')")
		mp.initialized = true
		return nil

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	mp.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		),
	)

	otel.SetMeterProvider(mp.meterProvider)
	mp.meter = mp.meterProvider.Meter("ticketbot")

	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	log.Info("Metrics provider initialized successfully")
	return nil
}

// createInstruments creates all metric instruments
func (mp *MetricsProvider) createInstruments() error {
	var err error

	counters := []struct {
		target      *metric.Int64Counter
		name        string
		description string
	}{
		{&mp.commandsCounter, CommandsTotal, "Total number of slash commands handled"},
		{&mp.interactionsCounter, InteractionsTotal, "Total number of component interactions handled"},
		{&mp.panelsCreatedCounter, PanelsCreatedTotal, "Total number of ticket panels created"},
		{&mp.ticketsOpenedCounter, TicketsOpenedTotal, "Total number of tickets opened"},
		{&mp.ticketsClosedCounter, TicketsClosedTotal, "Total number of tickets closed"},
		{&mp.natsMessagesPublishedCounter, NATSMessagesPublishedTotal, "Total number of NATS messages published"},
	}

	for _, c := range counters {
		*c.target, err = mp.meter.Int64Counter(c.name,
			metric.WithDescription(c.description),
			metric.WithUnit("1"),
		)
		if err != nil {
			return fmt.Errorf("failed to create counter %s: %w", c.name, err)
		}
	}

	mp.databasePingHist, err = mp.meter.Float64Histogram(
		DatabasePingDuration,
		metric.WithDescription("Database ping round trip in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create database ping histogram: %w", err)
	}

	return nil
}

// Shutdown flushes and stops the meter provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider == nil {
		return nil
	}

	if err := mp.meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}

	mp.meterProvider = nil
	mp.initialized = false
	return nil
}

// RecordCommand records a handled slash command
func (mp *MetricsProvider) RecordCommand(command string, err error) {
	if !mp.isEnabled() {
		return
	}

	mp.commandsCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelCommand, command),
			attribute.String(LabelOutcome, outcome(err)),
		),
	)
}

// RecordInteraction records a handled component interaction
func (mp *MetricsProvider) RecordInteraction(kind string, err error) {
	if !mp.isEnabled() {
		return
	}

	mp.interactionsCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelKind, kind),
			attribute.String(LabelOutcome, outcome(err)),
		),
	)
}

// RecordPanelCreated records a new ticket panel
func (mp *MetricsProvider) RecordPanelCreated(ctx context.Context, guildID int64) {
	if !mp.isEnabled() {
		return
	}

	mp.panelsCreatedCounter.Add(ctx, 1, metric.WithAttributes(guildAttr(guildID)))
}

// RecordTicketOpened records an opened ticket
func (mp *MetricsProvider) RecordTicketOpened(ctx context.Context, guildID int64) {
	if !mp.isEnabled() {
		return
	}

	mp.ticketsOpenedCounter.Add(ctx, 1, metric.WithAttributes(guildAttr(guildID)))
}

// RecordTicketClosed records a closed ticket and whether the bot closed it
func (mp *MetricsProvider) RecordTicketClosed(ctx context.Context, guildID int64, viaBot bool) {
	if !mp.isEnabled() {
		return
	}

	closedBy := ClosedByManual
	if viaBot {
		closedBy = ClosedByBot
	}

	mp.ticketsClosedCounter.Add(ctx, 1,
		metric.WithAttributes(
			guildAttr(guildID),
			attribute.String(LabelClosedBy, closedBy),
		),
	)
}

// RecordNATSMessagePublished records a NATS message being published
func (mp *MetricsProvider) RecordNATSMessagePublished(eventType string) {
	if !mp.isEnabled() {
		return
	}

	mp.natsMessagesPublishedCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelEventType, eventType),
		),
	)
}

// RecordDatabasePing records the round trip of a database ping
func (mp *MetricsProvider) RecordDatabasePing(duration time.Duration) {
	if !mp.isEnabled() {
		return
	}

	mp.databasePingHist.Record(context.Background(), duration.Seconds())
}

// isEnabled checks if metrics are enabled and instruments exist
func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.meterProvider != nil
}

func guildAttr(guildID int64) attribute.KeyValue {
	return attribute.String(LabelGuildID, strconv.FormatInt(guildID, 10))
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}

// Global metrics provider instance
var (
	globalMetrics *MetricsProvider
	metricsOnce   sync.Once
)

// InitializeGlobalMetrics initializes the global metrics provider
func InitializeGlobalMetrics(ctx context.Context, cfg *config.Config) error {
	var err error
	metricsOnce.Do(func() {
		globalMetrics = NewMetricsProvider(cfg)
		err = globalMetrics.Initialize(ctx)
	})
	return err
}

// GetMetrics returns the global metrics provider. Nil-safe: every Record method is a no-op on nil.
func GetMetrics() *MetricsProvider {
	return globalMetrics
}

// ShutdownGlobalMetrics shuts down the global metrics provider
func ShutdownGlobalMetrics(ctx context.Context) error {
	if globalMetrics != nil {
		return globalMetrics.Shutdown(ctx)
	}
	return nil
}
