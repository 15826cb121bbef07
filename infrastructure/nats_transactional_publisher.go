package infrastructure

import (
	"context"

	"ticketbot/domain/events"
	"ticketbot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// NATSTransactionalPublisher holds events until flush, then runs local handlers and publishes to NATS
type NATSTransactionalPublisher struct {
	realPublisher interfaces.EventPublisher
	localHandlers map[events.EventType][]interfaces.EventHandler
	pending       []events.Event
}

// NewNATSTransactionalPublisher creates a new transactional publisher
func NewNATSTransactionalPublisher(realPublisher interfaces.EventPublisher) *NATSTransactionalPublisher {
	return &NATSTransactionalPublisher{
		realPublisher: realPublisher,
		localHandlers: make(map[events.EventType][]interfaces.EventHandler),
		pending:       make([]events.Event, 0),
	}
}

// RegisterLocalHandler registers a handler run in-process when a matching event is flushed
func (p *NATSTransactionalPublisher) RegisterLocalHandler(eventType events.EventType, handler interfaces.EventHandler) {
	p.localHandlers[eventType] = append(p.localHandlers[eventType], handler)
}

// Publish stores an event in the pending queue without immediately publishing
func (p *NATSTransactionalPublisher) Publish(event events.Event) error {
	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"pendingCount": len(p.pending),
	}).Debug("Queued event until commit")

	p.pending = append(p.pending, event)
	return nil
}

// Flush runs local handlers and publishes all pending events. Called after a successful commit.
// Failures are logged per event so one bad event does not block the rest.
func (p *NATSTransactionalPublisher) Flush(ctx context.Context) error {
	for _, event := range p.pending {
		for _, handler := range p.localHandlers[event.Type()] {
			if err := handler(ctx, event); err != nil {
				log.WithFields(log.Fields{
					"eventType": event.Type(),
					"error":     err,
				}).Error("Local event handler failed")
			}
		}

		if err := p.realPublisher.Publish(event); err != nil {
			log.WithFields(log.Fields{
				"eventType": event.Type(),
				"error":     err,
			}).Error("Failed to publish event during flush")
		}
	}

	p.pending = p.pending[:0]
	return nil
}

// Discard clears all pending events without publishing them. Called on rollback.
func (p *NATSTransactionalPublisher) Discard() {
	if len(p.pending) > 0 {
		log.WithField("discardedEventCount", len(p.pending)).Debug("Discarding queued events")
	}
	p.pending = p.pending[:0]
}
