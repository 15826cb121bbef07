package repository

import (
	"context"
	"sync"
	"testing"

	"ticketbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildStatsRepository(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	t.Run("guild without tickets reads zero", func(t *testing.T) {
		total, err := NewGuildStatsRepository(testDB.DB, 1).Get(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("increment creates and grows the row", func(t *testing.T) {
		repo := NewGuildStatsRepository(testDB.DB, 2)

		total, err := repo.Increment(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		total, err = repo.Increment(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		stored, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stored)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		const n = 50
		repo := NewGuildStatsRepository(testDB.DB, 3)

		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.Increment(ctx); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		total, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(n), total)
	})

	t.Run("guilds are isolated", func(t *testing.T) {
		total, err := NewGuildStatsRepository(testDB.DB, 1).Get(ctx)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
