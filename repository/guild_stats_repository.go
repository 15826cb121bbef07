package repository

import (
	"context"
	"errors"
	"fmt"

	"ticketbot/database"

	"github.com/jackc/pgx/v5"
)

// GuildStatsRepository implements the GuildStatsRepository interface for a single guild
type GuildStatsRepository struct {
	q       Queryable
	guildID int64
}

// NewGuildStatsRepository creates a new guild-scoped stats repository
func NewGuildStatsRepository(db *database.DB, guildID int64) *GuildStatsRepository {
	return &GuildStatsRepository{q: db.Pool, guildID: guildID}
}

// newGuildStatsRepository creates a new guild-scoped stats repository with a transaction
func newGuildStatsRepository(q Queryable, guildID int64) *GuildStatsRepository {
	return &GuildStatsRepository{q: q, guildID: guildID}
}

// Increment adds one ticket in a single statement so concurrent callers never lose an update
func (r *GuildStatsRepository) Increment(ctx context.Context) (int64, error) {
	query := `
		INSERT INTO guild_stats (guild_id, total_tickets)
		VALUES ($1, 1)
		ON CONFLICT (guild_id) DO UPDATE
		SET total_tickets = guild_stats.total_tickets + 1
		RETURNING total_tickets
	`

	var total int64
	if err := r.q.QueryRow(ctx, query, r.guildID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to increment ticket count for guild %d: %w", r.guildID, err)
	}

	return total, nil
}

// Get returns the total ticket count, 0 when the guild never had a ticket
func (r *GuildStatsRepository) Get(ctx context.Context) (int64, error) {
	query := `SELECT total_tickets FROM guild_stats WHERE guild_id = $1`

	var total int64
	err := r.q.QueryRow(ctx, query, r.guildID).Scan(&total)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get ticket count for guild %d: %w", r.guildID, err)
	}

	return total, nil
}
