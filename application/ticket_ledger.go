package application

import (
	"context"
	"fmt"
	"time"

	"ticketbot/domain/entities"
	"ticketbot/domain/events"
	"ticketbot/domain/interfaces"
)

// TicketLedger writes ticket lifecycle changes through a unit of work, one transaction per change
type TicketLedger struct {
	uowFactory UnitOfWorkFactory
}

// NewTicketLedger creates a new ticket ledger
func NewTicketLedger(uowFactory UnitOfWorkFactory) *TicketLedger {
	return &TicketLedger{uowFactory: uowFactory}
}

var _ interfaces.TicketLedger = (*TicketLedger)(nil)

// RecordOpened increments the guild counter, stores the ticket and queues TicketOpened in one transaction
func (l *TicketLedger) RecordOpened(ctx context.Context, ticket *entities.Ticket) (int64, error) {
	uow := l.uowFactory.CreateForGuild(ticket.GuildID)
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback() }()

	total, err := uow.GuildStatsRepository().Increment(ctx)
	if err != nil {
		return 0, err
	}

	if err := uow.TicketRepository().Create(ctx, ticket); err != nil {
		return 0, err
	}

	var panelID int64
	if ticket.PanelID != nil {
		panelID = *ticket.PanelID
	}
	if err := uow.EventBus().Publish(events.TicketOpenedEvent{
		GuildID:      ticket.GuildID,
		ChannelID:    ticket.ChannelID,
		OpenerID:     ticket.OpenerID,
		PanelID:      panelID,
		Label:        ticket.Label,
		TotalTickets: total,
		OpenedAt:     ticket.OpenedAt,
	}); err != nil {
		return 0, fmt.Errorf("failed to queue ticket opened event: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return 0, err
	}

	return total, nil
}

// RecordClosed marks the channel's ticket closed and queues TicketClosed. Returns nil for untracked channels.
func (l *TicketLedger) RecordClosed(ctx context.Context, guildID, channelID int64, closedBy *int64) (*entities.Ticket, error) {
	uow := l.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback() }()

	ticket, err := uow.TicketRepository().MarkClosed(ctx, channelID, closedBy)
	if err != nil {
		return nil, err
	}

	if ticket != nil {
		closedAt := time.Now().UTC()
		if ticket.ClosedAt != nil {
			closedAt = *ticket.ClosedAt
		}
		var closer int64
		if closedBy != nil {
			closer = *closedBy
		}
		if err := uow.EventBus().Publish(events.TicketClosedEvent{
			GuildID:   guildID,
			ChannelID: channelID,
			OpenerID:  ticket.OpenerID,
			ClosedBy:  closer,
			ClosedAt:  closedAt,
		}); err != nil {
			return nil, fmt.Errorf("failed to queue ticket closed event: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return ticket, nil
}
