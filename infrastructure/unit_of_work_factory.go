package infrastructure

import (
	"sync"

	"ticketbot/application"
	"ticketbot/database"
	"ticketbot/domain/events"
	"ticketbot/domain/interfaces"
	"ticketbot/repository"
)

// UnitOfWorkFactory implements application.UnitOfWorkFactory. Every unit of work gets its own
// transactional publisher so events leave the process only after commit.
type UnitOfWorkFactory struct {
	repoFactory interface {
		CreateForGuildWithPublisher(guildID int64, transactionalPublisher interfaces.TransactionalEventPublisher) application.UnitOfWork
	}
	eventPublisher interfaces.EventPublisher

	mu            sync.RWMutex
	localHandlers map[events.EventType][]interfaces.EventHandler
}

// NewUnitOfWorkFactory creates a new UnitOfWorkFactory
func NewUnitOfWorkFactory(db *database.DB, eventPublisher interfaces.EventPublisher) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		repoFactory:    repository.NewUnitOfWorkFactory(db),
		eventPublisher: eventPublisher,
		localHandlers:  make(map[events.EventType][]interfaces.EventHandler),
	}
}

// Subscribe registers an in-process handler run whenever a committed unit of work flushes a matching event
func (f *UnitOfWorkFactory) Subscribe(eventType events.EventType, handler interfaces.EventHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.localHandlers[eventType] = append(f.localHandlers[eventType], handler)
	return nil
}

// CreateForGuild creates a new UnitOfWork with a transactional event publisher
func (f *UnitOfWorkFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	return f.repoFactory.CreateForGuildWithPublisher(guildID, f.newTransactionalPublisher())
}

func (f *UnitOfWorkFactory) newTransactionalPublisher() *NATSTransactionalPublisher {
	publisher := NewNATSTransactionalPublisher(f.eventPublisher)

	f.mu.RLock()
	defer f.mu.RUnlock()
	for eventType, handlers := range f.localHandlers {
		for _, handler := range handlers {
			publisher.RegisterLocalHandler(eventType, handler)
		}
	}

	return publisher
}

var (
	_ application.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
	_ interfaces.EventSubscriber    = (*UnitOfWorkFactory)(nil)
)
