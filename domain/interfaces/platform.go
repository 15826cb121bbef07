package interfaces

import (
	"context"

	"ticketbot/domain/entities"
)

// TicketIntro is the content of the first message posted in a ticket channel
type TicketIntro struct {
	GuildName string
	UserID    int64
	Label     string
}

// ChannelGateway abstracts the chat platform operations the ticket lifecycle needs
type ChannelGateway interface {
	// CategoryExists reports whether the category channel exists in the guild
	CategoryExists(ctx context.Context, guildID, categoryID int64) (bool, error)

	// ExistingRoles filters roleIDs down to the roles that still exist in the guild, keeping order
	ExistingRoles(ctx context.Context, guildID int64, roleIDs []int64) ([]int64, error)

	// CreateTicketChannel creates a text channel under the category with the given overwrites
	CreateTicketChannel(ctx context.Context, guildID, categoryID int64, name string, overwrites []entities.PermissionOverwrite) (int64, error)

	// SendTicketIntro posts the intro message with the close control
	SendTicketIntro(ctx context.Context, channelID int64, intro TicketIntro) error

	// DeleteChannel removes a channel
	DeleteChannel(ctx context.Context, channelID int64) error
}

// TicketLedger records ticket lifecycle changes, each in its own transaction
type TicketLedger interface {
	// RecordOpened increments the guild counter and stores the ticket atomically, returning the new total
	RecordOpened(ctx context.Context, ticket *entities.Ticket) (int64, error)

	// RecordClosed marks the ticket bound to the channel as closed; nil when the channel is untracked
	RecordClosed(ctx context.Context, guildID, channelID int64, closedBy *int64) (*entities.Ticket, error)
}
