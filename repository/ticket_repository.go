package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketbot/database"
	"ticketbot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// TicketRepository implements the TicketRepository interface for a single guild
type TicketRepository struct {
	q       Queryable
	guildID int64
}

// NewTicketRepository creates a new guild-scoped ticket repository
func NewTicketRepository(db *database.DB, guildID int64) *TicketRepository {
	return &TicketRepository{q: db.Pool, guildID: guildID}
}

// newTicketRepository creates a new guild-scoped ticket repository with a transaction
func newTicketRepository(q Queryable, guildID int64) *TicketRepository {
	return &TicketRepository{q: q, guildID: guildID}
}

const ticketColumns = `id, guild_id, channel_id, opener_id, panel_id, label, opened_at, closed_at, closed_by`

// Create inserts a ticket. The guild always comes from the repository scope.
func (r *TicketRepository) Create(ctx context.Context, ticket *entities.Ticket) error {
	query := `
		INSERT INTO tickets (guild_id, channel_id, opener_id, panel_id, label, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, opened_at
	`

	if ticket.OpenedAt.IsZero() {
		ticket.OpenedAt = time.Now().UTC()
	}

	err := r.q.QueryRow(ctx, query,
		r.guildID,
		ticket.ChannelID,
		ticket.OpenerID,
		ticket.PanelID,
		ticket.Label,
		ticket.OpenedAt,
	).Scan(&ticket.ID, &ticket.OpenedAt)
	if err != nil {
		return fmt.Errorf("failed to create ticket for channel %d: %w", ticket.ChannelID, err)
	}

	ticket.GuildID = r.guildID
	return nil
}

// MarkClosed closes the open ticket bound to the channel. Returns nil when no open ticket exists,
// so closing twice is harmless.
func (r *TicketRepository) MarkClosed(ctx context.Context, channelID int64, closedBy *int64) (*entities.Ticket, error) {
	query := `
		UPDATE tickets
		SET closed_at = NOW(), closed_by = $3
		WHERE guild_id = $1 AND channel_id = $2 AND closed_at IS NULL
		RETURNING ` + ticketColumns

	ticket, err := scanTicket(r.q.QueryRow(ctx, query, r.guildID, channelID, closedBy))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to close ticket for channel %d: %w", channelID, err)
	}

	return ticket, nil
}

// CountOpen returns the number of tickets in the guild that are still open
func (r *TicketRepository) CountOpen(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE guild_id = $1 AND closed_at IS NULL`

	var count int64
	if err := r.q.QueryRow(ctx, query, r.guildID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open tickets for guild %d: %w", r.guildID, err)
	}

	return count, nil
}

func scanTicket(row pgx.Row) (*entities.Ticket, error) {
	var ticket entities.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.GuildID,
		&ticket.ChannelID,
		&ticket.OpenerID,
		&ticket.PanelID,
		&ticket.Label,
		&ticket.OpenedAt,
		&ticket.ClosedAt,
		&ticket.ClosedBy,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
