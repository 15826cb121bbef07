package testhelpers

import (
	"context"

	"ticketbot/domain/entities"
	"ticketbot/domain/interfaces"

	"github.com/stretchr/testify/mock"
)

// MockChannelGateway is a mock implementation of ChannelGateway
type MockChannelGateway struct {
	mock.Mock
}

func (m *MockChannelGateway) CategoryExists(ctx context.Context, guildID, categoryID int64) (bool, error) {
	args := m.Called(ctx, guildID, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockChannelGateway) ExistingRoles(ctx context.Context, guildID int64, roleIDs []int64) ([]int64, error) {
	args := m.Called(ctx, guildID, roleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockChannelGateway) CreateTicketChannel(ctx context.Context, guildID, categoryID int64, name string, overwrites []entities.PermissionOverwrite) (int64, error) {
	args := m.Called(ctx, guildID, categoryID, name, overwrites)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChannelGateway) SendTicketIntro(ctx context.Context, channelID int64, intro interfaces.TicketIntro) error {
	args := m.Called(ctx, channelID, intro)
	return args.Error(0)
}

func (m *MockChannelGateway) DeleteChannel(ctx context.Context, channelID int64) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

// MockTicketLedger is a mock implementation of TicketLedger
type MockTicketLedger struct {
	mock.Mock
}

func (m *MockTicketLedger) RecordOpened(ctx context.Context, ticket *entities.Ticket) (int64, error) {
	args := m.Called(ctx, ticket)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTicketLedger) RecordClosed(ctx context.Context, guildID, channelID int64, closedBy *int64) (*entities.Ticket, error) {
	args := m.Called(ctx, guildID, channelID, closedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ticket), args.Error(1)
}
