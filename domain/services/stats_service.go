package services

import (
	"context"

	"ticketbot/domain/entities"
	"ticketbot/domain/interfaces"
)

// statsService implements the StatsService interface
type statsService struct {
	statsRepo  interfaces.GuildStatsRepository
	ticketRepo interfaces.TicketRepository
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo interfaces.GuildStatsRepository, ticketRepo interfaces.TicketRepository) interfaces.StatsService {
	return &statsService{
		statsRepo:  statsRepo,
		ticketRepo: ticketRepo,
	}
}

// GetStats returns the total and currently open ticket counts of the guild
func (s *statsService) GetStats(ctx context.Context, guildID int64) (*entities.GuildStats, error) {
	total, err := s.statsRepo.Get(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load ticket stats", Err: err}
	}

	open, err := s.ticketRepo.CountOpen(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "count open tickets", Err: err}
	}

	return &entities.GuildStats{
		GuildID:      guildID,
		TotalTickets: total,
		OpenTickets:  open,
	}, nil
}
