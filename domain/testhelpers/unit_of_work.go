package testhelpers

import (
	"context"

	"ticketbot/domain/events"
	"ticketbot/domain/interfaces"
)

// FakeUnitOfWork hands out repository mocks and records transaction calls.
// Events published through EventBus are kept until Rollback discards them.
type FakeUnitOfWork struct {
	Stats     *MockGuildStatsRepository
	Tickets   *MockTicketRepository
	Panels    *MockPanelRepository
	Configs   *MockGuildConfigRepository
	Published []events.Event

	BeginErr   error
	CommitErr  error
	Began      bool
	Committed  bool
	RolledBack bool
}

// NewFakeUnitOfWork creates a fake unit of work with fresh mocks
func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Stats:   new(MockGuildStatsRepository),
		Tickets: new(MockTicketRepository),
		Panels:  new(MockPanelRepository),
		Configs: new(MockGuildConfigRepository),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) error {
	if u.BeginErr != nil {
		return u.BeginErr
	}
	u.Began = true
	return nil
}

func (u *FakeUnitOfWork) Commit() error {
	if u.CommitErr != nil {
		return u.CommitErr
	}
	u.Committed = true
	return nil
}

func (u *FakeUnitOfWork) Rollback() error {
	if !u.Committed {
		u.RolledBack = true
		u.Published = nil
	}
	return nil
}

func (u *FakeUnitOfWork) GuildConfigRepository() interfaces.GuildConfigRepository { return u.Configs }
func (u *FakeUnitOfWork) PanelRepository() interfaces.PanelRepository             { return u.Panels }
func (u *FakeUnitOfWork) GuildStatsRepository() interfaces.GuildStatsRepository   { return u.Stats }
func (u *FakeUnitOfWork) TicketRepository() interfaces.TicketRepository           { return u.Tickets }
func (u *FakeUnitOfWork) EventBus() interfaces.EventPublisher                      { return u }

func (u *FakeUnitOfWork) Publish(event events.Event) error {
	u.Published = append(u.Published, event)
	return nil
}
