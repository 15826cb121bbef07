package services

import (
	"context"

	"ticketbot/domain/entities"
	"ticketbot/domain/interfaces"
)

// guildConfigService implements the GuildConfigService interface
type guildConfigService struct {
	configRepo interfaces.GuildConfigRepository
}

// NewGuildConfigService creates a new guild config service
func NewGuildConfigService(configRepo interfaces.GuildConfigRepository) interfaces.GuildConfigService {
	return &guildConfigService{
		configRepo: configRepo,
	}
}

// Configure replaces the guild configuration. Staff roles are de-duplicated keeping the first occurrence.
func (s *guildConfigService) Configure(ctx context.Context, guildID, categoryID int64, staffRoleIDs []int64) (*entities.GuildConfig, error) {
	if categoryID <= 0 {
		return nil, NewValidationError("a ticket category is required")
	}

	cfg := entities.NewGuildConfig(guildID, categoryID, staffRoleIDs)
	if len(cfg.StaffRoleIDs) == 0 {
		return nil, NewValidationError("at least one staff role is required")
	}

	if err := s.configRepo.Upsert(ctx, cfg); err != nil {
		return nil, &PersistenceError{Op: "save guild config", Err: err}
	}

	return cfg, nil
}
