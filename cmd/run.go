package cmd

import (
	"context"
	"fmt"
	"time"

	"ticketbot/application"
	"ticketbot/bot"
	"ticketbot/config"
	"ticketbot/database"
	"ticketbot/domain/interfaces"
	"ticketbot/infrastructure"
	"ticketbot/infrastructure/observability"
	"ticketbot/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application, blocking until ctx is cancelled
func Run(ctx context.Context, cfg *config.Config) error {
	log.WithField("environment", cfg.Environment).Info("Starting ticketbot...")

	// Initialize metrics
	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		log.WithError(err).Warn("Failed to initialize metrics, continuing without them")
	}
	metrics := observability.GetMetrics()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully")

	// Initialize event publishing
	eventPublisher, natsClient, err := newEventPublisher(ctx, cfg, metrics)
	if err != nil {
		return err
	}
	if natsClient != nil {
		defer func() {
			if err := natsClient.Close(); err != nil {
				log.WithError(err).Error("Error closing NATS connection")
			}
		}()
	}

	// Initialize unit of work factory and in-process subscriptions
	uowFactory := infrastructure.NewUnitOfWorkFactory(db, eventPublisher)
	if err := application.RegisterApplicationSubscriptions(uowFactory, metrics); err != nil {
		return fmt.Errorf("failed to register event subscriptions: %w", err)
	}

	deps := bot.Dependencies{
		UOWFactory:   uowFactory,
		Registry:     application.NewPanelRegistry(repository.NewPanelRepository(db)),
		ConfigReader: repository.NewGuildConfigRepository(db),
		Database:     db,
		Metrics:      metrics,
	}
	if natsClient != nil {
		deps.EventBus = natsClient
	}

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(ctx, bot.Config{
		Token:          cfg.DiscordToken,
		CommandGuildID: cfg.CommandGuildID,
	}, deps)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	<-ctx.Done()
	log.Info("Received shutdown signal, shutting down gracefully...")

	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := observability.ShutdownGlobalMetrics(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down metrics")
	}

	log.Info("Shutdown completed")
	return nil
}

// newEventPublisher connects to NATS when servers are configured. Without servers
// events are only delivered to in-process subscribers.
func newEventPublisher(ctx context.Context, cfg *config.Config, metrics *observability.MetricsProvider) (interfaces.EventPublisher, *infrastructure.NATSClient, error) {
	if cfg.NATSServers == "" {
		log.Info("NATS_SERVERS not set, domain events stay in process")
		return infrastructure.NewNoopEventPublisher(), nil, nil
	}

	log.WithField("servers", cfg.NATSServers).Info("Connecting to NATS...")
	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
	if err := natsClient.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	publisher := infrastructure.NewNATSEventPublisher(natsClient, infrastructure.NewEventSubjectMapper())
	publisher.OnPublished(metrics.RecordNATSMessagePublished)

	if err := publisher.EnsureDomainEventStream(); err != nil {
		log.WithError(err).Warn("Failed to ensure domain event stream")
	}

	return publisher, natsClient, nil
}
