package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ticketbot/domain/entities"
	"ticketbot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// ticketService implements the TicketService interface
type ticketService struct {
	configRepo interfaces.GuildConfigRepository
	gateway    interfaces.ChannelGateway
	ledger     interfaces.TicketLedger

	// Channels the bot is deleting itself; their delete events carry no closer
	closing sync.Map
}

// NewTicketService creates a new ticket service
func NewTicketService(
	configRepo interfaces.GuildConfigRepository,
	gateway interfaces.ChannelGateway,
	ledger interfaces.TicketLedger,
) interfaces.TicketService {
	return &ticketService{
		configRepo: configRepo,
		gateway:    gateway,
		ledger:     ledger,
	}
}

// OpenTicket creates the private ticket channel, posts the intro and records the ticket.
// The channel is removed again if anything after its creation fails.
func (s *ticketService) OpenTicket(ctx context.Context, req interfaces.OpenTicketRequest) (*entities.Ticket, error) {
	cfg, err := s.configRepo.Get(ctx, req.GuildID)
	if err != nil {
		return nil, &PersistenceError{Op: "load guild config", Err: err}
	}
	if cfg == nil {
		return nil, ErrConfigurationMissing
	}

	exists, err := s.gateway.CategoryExists(ctx, req.GuildID, cfg.CategoryID)
	if err != nil {
		return nil, &ExternalPlatformError{Op: "resolve ticket category", Err: err}
	}
	if !exists {
		return nil, &ExternalPlatformError{
			Op:  "resolve ticket category",
			Err: fmt.Errorf("category %d not found", cfg.CategoryID),
		}
	}

	staffRoles, err := s.gateway.ExistingRoles(ctx, req.GuildID, cfg.StaffRoleIDs)
	if err != nil {
		return nil, &ExternalPlatformError{Op: "resolve staff roles", Err: err}
	}
	if skipped := len(cfg.StaffRoleIDs) - len(staffRoles); skipped > 0 {
		log.WithFields(log.Fields{
			"guildID":      req.GuildID,
			"configured":   cfg.StaffRoleIDs,
			"skippedCount": skipped,
		}).Warn("Skipping staff roles that no longer exist")
	}

	overwrites := entities.TicketOverwrites(req.GuildID, req.UserID, staffRoles)
	name := entities.TicketChannelName(req.Username, req.UserID)

	channelID, err := s.gateway.CreateTicketChannel(ctx, req.GuildID, cfg.CategoryID, name, overwrites)
	if err != nil {
		return nil, &ExternalPlatformError{Op: "create ticket channel", Err: err}
	}

	intro := interfaces.TicketIntro{
		GuildName: req.GuildName,
		UserID:    req.UserID,
		Label:     req.Label,
	}
	if err := s.gateway.SendTicketIntro(ctx, channelID, intro); err != nil {
		s.discardChannel(ctx, req.GuildID, channelID)
		return nil, &ExternalPlatformError{Op: "post ticket intro", Err: err}
	}

	ticket := &entities.Ticket{
		GuildID:   req.GuildID,
		ChannelID: channelID,
		OpenerID:  req.UserID,
		Label:     req.Label,
		OpenedAt:  time.Now().UTC(),
	}
	if req.PanelID > 0 {
		panelID := req.PanelID
		ticket.PanelID = &panelID
	}

	total, err := s.ledger.RecordOpened(ctx, ticket)
	if err != nil {
		s.discardChannel(ctx, req.GuildID, channelID)
		return nil, &PersistenceError{Op: "record ticket", Err: err}
	}

	log.WithFields(log.Fields{
		"guildID":      req.GuildID,
		"channelID":    channelID,
		"userID":       req.UserID,
		"panelID":      req.PanelID,
		"label":        req.Label,
		"totalTickets": total,
	}).Info("Ticket opened")

	return ticket, nil
}

// CloseTicket deletes the ticket channel and marks the ticket closed.
// Nothing changes when the channel cannot be deleted.
func (s *ticketService) CloseTicket(ctx context.Context, req interfaces.CloseTicketRequest) error {
	if req.CheckName && !entities.IsTicketChannelName(req.ChannelName) {
		return ErrNotATicketChannel
	}

	s.closing.Store(req.ChannelID, struct{}{})
	defer s.closing.Delete(req.ChannelID)

	if err := s.gateway.DeleteChannel(ctx, req.ChannelID); err != nil {
		return &ExternalPlatformError{Op: "delete ticket channel", Err: err}
	}

	closedBy := req.ClosedBy
	ticket, err := s.ledger.RecordClosed(ctx, req.GuildID, req.ChannelID, &closedBy)
	if err != nil {
		return &PersistenceError{Op: "record ticket close", Err: err}
	}

	fields := log.Fields{
		"guildID":   req.GuildID,
		"channelID": req.ChannelID,
		"closedBy":  req.ClosedBy,
	}
	if ticket == nil {
		log.WithFields(fields).Info("Closed untracked ticket channel")
	} else {
		log.WithFields(fields).Info("Ticket closed")
	}

	return nil
}

// HandleChannelDeleted marks a ticket closed when its channel disappears without the bot
func (s *ticketService) HandleChannelDeleted(ctx context.Context, guildID, channelID int64) error {
	if _, inFlight := s.closing.Load(channelID); inFlight {
		log.WithField("channelID", channelID).Debug("Channel delete belongs to a close in progress")
		return nil
	}

	ticket, err := s.ledger.RecordClosed(ctx, guildID, channelID, nil)
	if err != nil {
		return &PersistenceError{Op: "record deleted ticket channel", Err: err}
	}
	if ticket != nil {
		log.WithFields(log.Fields{
			"guildID":   guildID,
			"channelID": channelID,
		}).Info("Ticket channel deleted outside the bot, marked closed")
	}
	return nil
}

func (s *ticketService) discardChannel(ctx context.Context, guildID, channelID int64) {
	if err := s.gateway.DeleteChannel(ctx, channelID); err != nil {
		log.WithFields(log.Fields{
			"guildID":   guildID,
			"channelID": channelID,
			"error":     err,
		}).Error("Failed to remove ticket channel after failed open")
	}
}
