package interfaces

import (
	"context"

	"ticketbot/domain/events"
)

// EventHandler reacts to a published domain event
type EventHandler func(ctx context.Context, event events.Event) error

// EventSubscriber lets the application react to domain events without
// depending on the infrastructure implementation
type EventSubscriber interface {
	Subscribe(eventType events.EventType, handler EventHandler) error
}
