package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketbot/domain/entities"
	"ticketbot/domain/events"
	"ticketbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTicketLedger_RecordOpened(t *testing.T) {
	t.Parallel()

	uow := testhelpers.NewFakeUnitOfWork()
	factory := &fakeUnitOfWorkFactory{uow: uow}
	panelID := int64(7)
	ticket := &entities.Ticket{GuildID: 10, ChannelID: 100, OpenerID: 42, PanelID: &panelID, Label: "Billing", OpenedAt: time.Now()}

	uow.Stats.On("Increment", mock.Anything).Return(int64(3), nil)
	uow.Tickets.On("Create", mock.Anything, ticket).Return(nil)

	total, err := NewTicketLedger(factory).RecordOpened(context.Background(), ticket)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []int64{10}, factory.guildIDs)
	assert.True(t, uow.Committed)
	require.Len(t, uow.Published, 1)
	opened := uow.Published[0].(events.TicketOpenedEvent)
	assert.Equal(t, int64(100), opened.ChannelID)
	assert.Equal(t, int64(7), opened.PanelID)
	assert.Equal(t, int64(3), opened.TotalTickets)
}

func TestTicketLedger_RecordOpened_InsertFailureRollsBack(t *testing.T) {
	t.Parallel()

	uow := testhelpers.NewFakeUnitOfWork()
	ticket := &entities.Ticket{GuildID: 10, ChannelID: 100, OpenerID: 42}

	uow.Stats.On("Increment", mock.Anything).Return(int64(3), nil)
	uow.Tickets.On("Create", mock.Anything, ticket).Return(errors.New("duplicate key"))

	_, err := NewTicketLedger(&fakeUnitOfWorkFactory{uow: uow}).RecordOpened(context.Background(), ticket)

	require.Error(t, err)
	assert.False(t, uow.Committed)
	assert.True(t, uow.RolledBack)
	assert.Empty(t, uow.Published)
}

func TestTicketLedger_RecordOpened_BeginFailure(t *testing.T) {
	t.Parallel()

	uow := testhelpers.NewFakeUnitOfWork()
	uow.BeginErr = errors.New("pool exhausted")

	_, err := NewTicketLedger(&fakeUnitOfWorkFactory{uow: uow}).RecordOpened(context.Background(), &entities.Ticket{GuildID: 1})

	require.Error(t, err)
	uow.Stats.AssertNotCalled(t, "Increment", mock.Anything)
}

func TestTicketLedger_RecordClosed(t *testing.T) {
	t.Parallel()

	t.Run("tracked ticket", func(t *testing.T) {
		t.Parallel()

		uow := testhelpers.NewFakeUnitOfWork()
		closedBy := int64(5)
		closedAt := time.Now().UTC()
		uow.Tickets.On("MarkClosed", mock.Anything, int64(100), &closedBy).
			Return(&entities.Ticket{GuildID: 10, ChannelID: 100, OpenerID: 42, ClosedAt: &closedAt, ClosedBy: &closedBy}, nil)

		ticket, err := NewTicketLedger(&fakeUnitOfWorkFactory{uow: uow}).RecordClosed(context.Background(), 10, 100, &closedBy)

		require.NoError(t, err)
		require.NotNil(t, ticket)
		assert.True(t, uow.Committed)
		require.Len(t, uow.Published, 1)
		assert.Equal(t, events.TicketClosedEvent{
			GuildID:   10,
			ChannelID: 100,
			OpenerID:  42,
			ClosedBy:  5,
			ClosedAt:  closedAt,
		}, uow.Published[0])
	})

	t.Run("untracked channel publishes nothing", func(t *testing.T) {
		t.Parallel()

		uow := testhelpers.NewFakeUnitOfWork()
		uow.Tickets.On("MarkClosed", mock.Anything, int64(100), (*int64)(nil)).Return(nil, nil)

		ticket, err := NewTicketLedger(&fakeUnitOfWorkFactory{uow: uow}).RecordClosed(context.Background(), 10, 100, nil)

		require.NoError(t, err)
		assert.Nil(t, ticket)
		assert.Empty(t, uow.Published)
	})
}
