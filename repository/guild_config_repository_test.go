package repository

import (
	"context"
	"testing"

	"ticketbot/domain/entities"
	"ticketbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildConfigRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildConfigRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing config", func(t *testing.T) {
		cfg, err := repo.Get(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("upsert then get returns stored value", func(t *testing.T) {
		stored := entities.NewGuildConfig(1, 100, []int64{10, 20})
		require.NoError(t, repo.Upsert(ctx, stored))
		assert.False(t, stored.UpdatedAt.IsZero())

		cfg, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, int64(100), cfg.CategoryID)
		assert.Equal(t, []int64{10, 20}, cfg.StaffRoleIDs)
	})

	t.Run("second upsert replaces every field", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, entities.NewGuildConfig(2, 100, []int64{10, 20, 30})))
		require.NoError(t, repo.Upsert(ctx, entities.NewGuildConfig(2, 200, []int64{40})))

		cfg, err := repo.Get(ctx, 2)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, int64(200), cfg.CategoryID)
		assert.Equal(t, []int64{40}, cfg.StaffRoleIDs)
	})

	t.Run("guilds are isolated", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, entities.NewGuildConfig(3, 300, []int64{1})))

		cfg, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), cfg.CategoryID)
	})
}
