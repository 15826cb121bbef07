package application

import (
	"ticketbot/domain/testhelpers"
)

type fakeUnitOfWorkFactory struct {
	uow      *testhelpers.FakeUnitOfWork
	guildIDs []int64
}

func (f *fakeUnitOfWorkFactory) CreateForGuild(guildID int64) UnitOfWork {
	f.guildIDs = append(f.guildIDs, guildID)
	return f.uow
}
