package bot

import (
	"context"
	"fmt"
	"time"

	"ticketbot/application"
	"ticketbot/bot/common"
	"ticketbot/bot/features/panels"
	"ticketbot/bot/features/setup"
	"ticketbot/bot/features/stats"
	"ticketbot/bot/features/status"
	"ticketbot/bot/features/tickets"
	"ticketbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token          string
	CommandGuildID string // Empty registers commands globally
}

// MetricsRecorder receives command and interaction outcomes
type MetricsRecorder interface {
	RecordCommand(command string, err error)
	RecordInteraction(kind string, err error)
	RecordDatabasePing(duration time.Duration)
}

// Dependencies are the collaborators the bot is wired with
type Dependencies struct {
	UOWFactory   application.UnitOfWorkFactory
	Registry     *application.PanelRegistry
	ConfigReader interfaces.GuildConfigRepository // Reads outside a transaction
	Database     status.DatabasePinger
	EventBus     status.ConnectionChecker // nil when publishing is disabled
	Metrics      MetricsRecorder
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	// Core components
	config   Config
	session  *discordgo.Session
	registry *application.PanelRegistry
	metrics  MetricsRecorder

	// Feature modules
	setup   *setup.Feature
	panels  *panels.Feature
	tickets *tickets.Feature
	stats   *stats.Feature
	status  *status.Feature
}

// New creates the bot, restores panel bindings, opens the gateway and registers commands
func New(ctx context.Context, config Config, deps Dependencies) (*Bot, error) {
	// Create Discord session
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:   config,
		session:  dg,
		registry: deps.Registry,
		metrics:  deps.Metrics,
	}

	// Create feature modules
	bot.setup = setup.NewFeature(dg, deps.UOWFactory)
	bot.panels = panels.NewFeature(dg, deps.UOWFactory, deps.Registry)
	bot.tickets = tickets.NewFeature(dg, deps.Registry, deps.ConfigReader, application.NewTicketLedger(deps.UOWFactory))
	bot.stats = stats.NewFeature(dg, deps.UOWFactory)
	bot.status = status.NewFeature(dg, deps.Database, deps.EventBus, deps.Registry, deps.Metrics.RecordDatabasePing)

	// Panel buttons must resolve as soon as the first interaction arrives
	restored, err := deps.Registry.RestoreAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error restoring panels: %w", err)
	}
	log.WithField("panelCount", restored).Info("Panel bindings restored")

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleInteractions)
	dg.AddHandler(bot.tickets.HandleChannelDelete)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithFields(log.Fields{
			"user":   r.User.Username,
			"guilds": len(r.Guilds),
		}).Info("Discord session ready")
	})

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	var err error

	switch name {
	case CommandConfigure:
		err = b.setup.HandleCommand(s, i)
	case CommandCreatePanel:
		err = b.panels.HandleCommand(s, i)
	case CommandClose:
		err = b.tickets.HandleCloseCommand(s, i)
	case CommandShowStats:
		err = b.stats.HandleCommand(s, i)
	case CommandHealthCheck:
		err = b.status.HandleCommand(s, i)
	default:
		log.WithField("command", name).Warn("Unknown command")
		return
	}

	b.metrics.RecordCommand(name, err)
}

// handleInteractions routes component interactions to appropriate features
func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	b.routeComponentInteraction(s, i, i.MessageComponentData().CustomID)
}

// routeComponentInteraction dispatches a parsed button event to the feature that owns it
func (b *Bot) routeComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	event, ok := application.ParseButtonID(customID)
	if !ok {
		log.WithField("customID", customID).Warn("Unhandled component interaction")
		common.RespondWithError(s, i, "This control is no longer supported.")
		return
	}

	switch ev := event.(type) {
	case application.OpenTicketButton:
		b.metrics.RecordInteraction("open_ticket", b.tickets.HandleOpenButton(s, i, ev))
	case application.CloseTicketButton:
		b.metrics.RecordInteraction("close_ticket", b.tickets.HandleCloseButton(s, i, ev))
	}
}
