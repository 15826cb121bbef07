package application

import (
	"context"
	"fmt"

	"ticketbot/domain/events"
	"ticketbot/domain/interfaces"
)

// TicketMetricsRecorder records ticket activity counters
type TicketMetricsRecorder interface {
	RecordPanelCreated(ctx context.Context, guildID int64)
	RecordTicketOpened(ctx context.Context, guildID int64)
	RecordTicketClosed(ctx context.Context, guildID int64, viaBot bool)
}

// RegisterApplicationSubscriptions registers the in-process handlers for ticket domain events
func RegisterApplicationSubscriptions(subscriber interfaces.EventSubscriber, metrics TicketMetricsRecorder) error {
	handlers := map[events.EventType]interfaces.EventHandler{
		events.EventTypePanelCreated: func(ctx context.Context, event events.Event) error {
			e, ok := event.(events.PanelCreatedEvent)
			if !ok {
				return fmt.Errorf("unexpected event payload %T", event)
			}
			metrics.RecordPanelCreated(ctx, e.GuildID)
			return nil
		},
		events.EventTypeTicketOpened: func(ctx context.Context, event events.Event) error {
			e, ok := event.(events.TicketOpenedEvent)
			if !ok {
				return fmt.Errorf("unexpected event payload %T", event)
			}
			metrics.RecordTicketOpened(ctx, e.GuildID)
			return nil
		},
		events.EventTypeTicketClosed: func(ctx context.Context, event events.Event) error {
			e, ok := event.(events.TicketClosedEvent)
			if !ok {
				return fmt.Errorf("unexpected event payload %T", event)
			}
			metrics.RecordTicketClosed(ctx, e.GuildID, e.ClosedBy != 0)
			return nil
		},
	}

	for eventType, handler := range handlers {
		if err := subscriber.Subscribe(eventType, handler); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", eventType, err)
		}
	}

	return nil
}
