package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"ticketbot/domain/entities"
	"ticketbot/domain/events"
	"ticketbot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// panelService implements the PanelService interface
type panelService struct {
	panelRepo      interfaces.PanelRepository
	eventPublisher interfaces.EventPublisher
}

// NewPanelService creates a new panel service
func NewPanelService(panelRepo interfaces.PanelRepository, eventPublisher interfaces.EventPublisher) interfaces.PanelService {
	return &panelService{
		panelRepo:      panelRepo,
		eventPublisher: eventPublisher,
	}
}

// CreatePanel validates the panel definition and stores it
func (s *panelService) CreatePanel(ctx context.Context, guildID, createdBy int64, name, rawOptions string) (*entities.Panel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("panel name cannot be empty")
	}
	if utf8.RuneCountInString(name) > entities.MaxPanelNameRunes {
		return nil, NewValidationError("panel name must be at most %d characters", entities.MaxPanelNameRunes)
	}

	options := entities.ParsePanelOptions(rawOptions)
	if !entities.ValidOptionCount(len(options)) {
		return nil, NewValidationError("a panel needs between %d and %d options, got %d",
			entities.MinPanelOptions, entities.MaxPanelOptions, len(options))
	}
	for _, label := range options {
		if entities.LabelTooLong(label) {
			return nil, NewValidationError("option %q is longer than %d characters", label, entities.MaxOptionLabelRunes)
		}
	}

	panel := &entities.Panel{
		GuildID: guildID,
		Name:    name,
		Options: options,
	}
	if err := s.panelRepo.Create(ctx, panel); err != nil {
		return nil, &PersistenceError{Op: "create panel", Err: err}
	}

	if err := s.eventPublisher.Publish(events.PanelCreatedEvent{
		PanelID:     panel.ID,
		GuildID:     guildID,
		Name:        panel.Name,
		OptionCount: len(panel.Options),
		CreatedBy:   createdBy,
	}); err != nil {
		log.WithFields(log.Fields{
			"panelID": panel.ID,
			"guildID": guildID,
			"error":   err,
		}).Error("Failed to publish panel created event")
	}

	return panel, nil
}

// RecordPanelMessage stores where the panel message was posted
func (s *panelService) RecordPanelMessage(ctx context.Context, panelID, channelID, messageID int64) error {
	if err := s.panelRepo.SetMessage(ctx, panelID, channelID, messageID); err != nil {
		return &PersistenceError{Op: "record panel message", Err: err}
	}
	return nil
}
