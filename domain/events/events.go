package events

import "time"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypePanelCreated EventType = "panel_created"
	EventTypeTicketOpened EventType = "ticket_opened"
	EventTypeTicketClosed EventType = "ticket_closed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// PanelCreatedEvent is emitted after a panel definition is stored
type PanelCreatedEvent struct {
	PanelID     int64
	GuildID     int64
	Name        string
	OptionCount int
	CreatedBy   int64
}

func (e PanelCreatedEvent) Type() EventType {
	return EventTypePanelCreated
}

// TicketOpenedEvent is emitted once a ticket channel exists and the counters were updated
type TicketOpenedEvent struct {
	GuildID      int64
	ChannelID    int64
	OpenerID     int64
	PanelID      int64
	Label        string
	TotalTickets int64
	OpenedAt     time.Time
}

func (e TicketOpenedEvent) Type() EventType {
	return EventTypeTicketOpened
}

// TicketClosedEvent is emitted when a ticket channel is closed, either through the bot
// or by someone deleting the channel directly (ClosedBy is zero then)
type TicketClosedEvent struct {
	GuildID   int64
	ChannelID int64
	OpenerID  int64
	ClosedBy  int64
	ClosedAt  time.Time
}

func (e TicketClosedEvent) Type() EventType {
	return EventTypeTicketClosed
}
