package testhelpers

import (
	"context"

	"ticketbot/domain/entities"
	"ticketbot/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockGuildConfigRepository is a mock implementation of GuildConfigRepository
type MockGuildConfigRepository struct {
	mock.Mock
}

func (m *MockGuildConfigRepository) Upsert(ctx context.Context, config *entities.GuildConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockGuildConfigRepository) Get(ctx context.Context, guildID int64) (*entities.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildConfig), args.Error(1)
}

// MockPanelRepository is a mock implementation of PanelRepository
type MockPanelRepository struct {
	mock.Mock
}

func (m *MockPanelRepository) Create(ctx context.Context, panel *entities.Panel) error {
	args := m.Called(ctx, panel)
	return args.Error(0)
}

func (m *MockPanelRepository) GetByID(ctx context.Context, panelID int64) (*entities.Panel, error) {
	args := m.Called(ctx, panelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Panel), args.Error(1)
}

func (m *MockPanelRepository) ListAll(ctx context.Context) ([]*entities.Panel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Panel), args.Error(1)
}

func (m *MockPanelRepository) SetMessage(ctx context.Context, panelID, channelID, messageID int64) error {
	args := m.Called(ctx, panelID, channelID, messageID)
	return args.Error(0)
}

// MockGuildStatsRepository is a mock implementation of GuildStatsRepository
type MockGuildStatsRepository struct {
	mock.Mock
}

func (m *MockGuildStatsRepository) Increment(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuildStatsRepository) Get(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *entities.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) MarkClosed(ctx context.Context, channelID int64, closedBy *int64) (*entities.Ticket, error) {
	args := m.Called(ctx, channelID, closedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ticket), args.Error(1)
}

func (m *MockTicketRepository) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
