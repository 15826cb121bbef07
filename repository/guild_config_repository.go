package repository

import (
	"context"
	"errors"
	"fmt"

	"ticketbot/database"
	"ticketbot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// GuildConfigRepository implements the GuildConfigRepository interface
type GuildConfigRepository struct {
	q Queryable
}

// NewGuildConfigRepository creates a new guild config repository
func NewGuildConfigRepository(db *database.DB) *GuildConfigRepository {
	return &GuildConfigRepository{q: db.Pool}
}

// NewGuildConfigRepositoryWithTx creates a new guild config repository with a transaction
func NewGuildConfigRepositoryWithTx(tx Queryable) *GuildConfigRepository {
	return &GuildConfigRepository{q: tx}
}

// Upsert stores the configuration, replacing every column of an existing row
func (r *GuildConfigRepository) Upsert(ctx context.Context, config *entities.GuildConfig) error {
	query := `
		INSERT INTO guild_configs (guild_id, category_id, staff_role_ids, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (guild_id) DO UPDATE
		SET category_id = EXCLUDED.category_id,
		    staff_role_ids = EXCLUDED.staff_role_ids,
		    updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`

	roles := config.StaffRoleIDs
	if roles == nil {
		roles = []int64{}
	}

	err := r.q.QueryRow(ctx, query, config.GuildID, config.CategoryID, roles).Scan(&config.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert guild config for guild %d: %w", config.GuildID, err)
	}

	return nil
}

// Get retrieves the configuration of a guild, returning nil when it does not exist
func (r *GuildConfigRepository) Get(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	query := `
		SELECT guild_id, category_id, staff_role_ids, updated_at
		FROM guild_configs
		WHERE guild_id = $1
	`

	var config entities.GuildConfig
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&config.GuildID,
		&config.CategoryID,
		&config.StaffRoleIDs,
		&config.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config for guild %d: %w", guildID, err)
	}

	return &config, nil
}
