package interfaces

import (
	"context"

	"ticketbot/domain/entities"
	"ticketbot/domain/events"
)

// GuildConfigRepository defines the interface for guild ticket configuration access
type GuildConfigRepository interface {
	// Upsert replaces the whole configuration of a guild
	Upsert(ctx context.Context, config *entities.GuildConfig) error

	// Get returns the configuration of a guild, or nil if none was stored
	Get(ctx context.Context, guildID int64) (*entities.GuildConfig, error)
}

// PanelRepository defines the interface for panel data access
type PanelRepository interface {
	// Create stores a new panel and assigns its ID
	Create(ctx context.Context, panel *entities.Panel) error

	// GetByID retrieves a panel by its ID, or nil if it does not exist
	GetByID(ctx context.Context, panelID int64) (*entities.Panel, error)

	// ListAll returns every stored panel ordered by ID
	ListAll(ctx context.Context) ([]*entities.Panel, error)

	// SetMessage records where the panel message was posted
	SetMessage(ctx context.Context, panelID, channelID, messageID int64) error
}

// GuildStatsRepository defines the interface for the guild ticket counters
type GuildStatsRepository interface {
	// Increment atomically adds one ticket and returns the new total
	Increment(ctx context.Context) (int64, error)

	// Get returns the total ticket count, 0 if the guild has none
	Get(ctx context.Context) (int64, error)
}

// TicketRepository defines the interface for ticket history access
type TicketRepository interface {
	// Create stores a newly opened ticket
	Create(ctx context.Context, ticket *entities.Ticket) error

	// MarkClosed closes an open ticket and returns it; nil if no open ticket uses the channel
	MarkClosed(ctx context.Context, channelID int64, closedBy *int64) (*entities.Ticket, error)

	// CountOpen returns the number of tickets that have not been closed
	CountOpen(ctx context.Context) (int64, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher queues events until the surrounding transaction finishes
type TransactionalEventPublisher interface {
	EventPublisher

	// Flush publishes every queued event; called after commit
	Flush(ctx context.Context) error

	// Discard drops every queued event; called on rollback
	Discard()
}
