package interfaces

import (
	"context"

	"ticketbot/domain/entities"
)

// GuildConfigService defines the interface for ticket configuration operations
type GuildConfigService interface {
	// Configure validates and replaces the ticket configuration of a guild
	Configure(ctx context.Context, guildID, categoryID int64, staffRoleIDs []int64) (*entities.GuildConfig, error)
}

// PanelService defines the interface for panel operations
type PanelService interface {
	// CreatePanel validates and stores a new panel
	CreatePanel(ctx context.Context, guildID, createdBy int64, name, rawOptions string) (*entities.Panel, error)

	// RecordPanelMessage stores the location of the rendered panel message
	RecordPanelMessage(ctx context.Context, panelID, channelID, messageID int64) error
}

// OpenTicketRequest carries everything needed to open a ticket from a panel button
type OpenTicketRequest struct {
	GuildID   int64
	GuildName string
	UserID    int64
	Username  string
	PanelID   int64
	Label     string
}

// CloseTicketRequest carries a close request for a channel
type CloseTicketRequest struct {
	GuildID     int64
	ChannelID   int64
	ChannelName string
	ClosedBy    int64
	CheckName   bool // Require the ticket naming convention (slash command path)
}

// TicketService defines the interface for the ticket lifecycle
type TicketService interface {
	// OpenTicket creates a private ticket channel and records it
	OpenTicket(ctx context.Context, req OpenTicketRequest) (*entities.Ticket, error)

	// CloseTicket deletes a ticket channel and records the close
	CloseTicket(ctx context.Context, req CloseTicketRequest) error

	// HandleChannelDeleted records the close of a ticket whose channel was removed outside the bot
	HandleChannelDeleted(ctx context.Context, guildID, channelID int64) error
}

// StatsService defines the interface for ticket statistics
type StatsService interface {
	// GetStats returns the ticket counters of the guild
	GetStats(ctx context.Context, guildID int64) (*entities.GuildStats, error)
}
