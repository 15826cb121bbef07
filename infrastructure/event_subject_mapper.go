package infrastructure

import (
	"fmt"

	"ticketbot/domain/events"
)

// DomainEventStream is the JetStream stream holding every published ticket event
const DomainEventStream = "ticket_events"

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypePanelCreated:
		return "tickets.panels.created"
	case events.EventTypeTicketOpened:
		return "tickets.opened"
	case events.EventTypeTicketClosed:
		return "tickets.closed"
	default:
		return fmt.Sprintf("tickets.unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case "tickets.panels.created":
		return events.EventTypePanelCreated
	case "tickets.opened":
		return events.EventTypeTicketOpened
	case "tickets.closed":
		return events.EventTypeTicketClosed
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"tickets.panels.created",
		"tickets.opened",
		"tickets.closed",
		"tickets.unknown.>",
	}
}
