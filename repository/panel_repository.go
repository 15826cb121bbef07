package repository

import (
	"context"
	"errors"
	"fmt"

	"ticketbot/database"
	"ticketbot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// PanelRepository implements the PanelRepository interface.
// Panels are looked up by their global ID, so the repository is not guild scoped.
type PanelRepository struct {
	q Queryable
}

// NewPanelRepository creates a new panel repository
func NewPanelRepository(db *database.DB) *PanelRepository {
	return &PanelRepository{q: db.Pool}
}

// newPanelRepository creates a new panel repository with a transaction
func newPanelRepository(q Queryable) *PanelRepository {
	return &PanelRepository{q: q}
}

const panelColumns = `panel_id, guild_id, name, option_labels, channel_id, message_id, created_at`

// Create inserts a panel and fills in its generated ID and creation time
func (r *PanelRepository) Create(ctx context.Context, panel *entities.Panel) error {
	query := `
		INSERT INTO panels (guild_id, name, option_labels)
		VALUES ($1, $2, $3)
		RETURNING panel_id, created_at
	`

	err := r.q.QueryRow(ctx, query, panel.GuildID, panel.Name, panel.Options).Scan(
		&panel.ID,
		&panel.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create panel: %w", err)
	}

	return nil
}

// GetByID retrieves a panel by ID, returning nil when it does not exist
func (r *PanelRepository) GetByID(ctx context.Context, panelID int64) (*entities.Panel, error) {
	query := `SELECT ` + panelColumns + ` FROM panels WHERE panel_id = $1`

	panel, err := scanPanel(r.q.QueryRow(ctx, query, panelID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get panel %d: %w", panelID, err)
	}

	return panel, nil
}

// ListAll returns every panel ordered by ID
func (r *PanelRepository) ListAll(ctx context.Context) ([]*entities.Panel, error) {
	query := `SELECT ` + panelColumns + ` FROM panels ORDER BY panel_id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list panels: %w", err)
	}
	defer rows.Close()

	var panels []*entities.Panel
	for rows.Next() {
		panel, err := scanPanel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan panel: %w", err)
		}
		panels = append(panels, panel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating panels: %w", err)
	}

	return panels, nil
}

// SetMessage records the channel and message a panel was posted to
func (r *PanelRepository) SetMessage(ctx context.Context, panelID, channelID, messageID int64) error {
	query := `
		UPDATE panels
		SET channel_id = $2, message_id = $3
		WHERE panel_id = $1
	`

	result, err := r.q.Exec(ctx, query, panelID, channelID, messageID)
	if err != nil {
		return fmt.Errorf("failed to set message for panel %d: %w", panelID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("panel %d not found", panelID)
	}

	return nil
}

func scanPanel(row pgx.Row) (*entities.Panel, error) {
	var panel entities.Panel
	err := row.Scan(
		&panel.ID,
		&panel.GuildID,
		&panel.Name,
		&panel.Options,
		&panel.ChannelID,
		&panel.MessageID,
		&panel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &panel, nil
}
