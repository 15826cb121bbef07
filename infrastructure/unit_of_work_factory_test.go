package infrastructure

import (
	"context"
	"testing"

	"ticketbot/domain/events"
	"ticketbot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWorkFactory_LocalHandlersRunAfterCommit(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	natsPublisher := &MockEventPublisher{}
	factory := NewUnitOfWorkFactory(testDB.DB, natsPublisher)

	var handled []events.Event
	require.NoError(t, factory.Subscribe(events.EventTypeTicketOpened, func(ctx context.Context, event events.Event) error {
		handled = append(handled, event)
		return nil
	}))

	t.Run("commit", func(t *testing.T) {
		uow := factory.CreateForGuild(1)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.EventBus().Publish(events.TicketOpenedEvent{GuildID: 1, ChannelID: 10}))

		assert.Empty(t, handled)
		require.NoError(t, uow.Commit())

		assert.Len(t, handled, 1)
		assert.Len(t, natsPublisher.PublishedEvents, 1)
	})

	t.Run("rollback", func(t *testing.T) {
		uow := factory.CreateForGuild(1)
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.EventBus().Publish(events.TicketOpenedEvent{GuildID: 1, ChannelID: 11}))
		require.NoError(t, uow.Rollback())

		assert.Len(t, handled, 1)
		assert.Len(t, natsPublisher.PublishedEvents, 1)
	})
}
