package stats

import (
	"context"

	"ticketbot/bot/common"
	"ticketbot/domain/entities"
	"ticketbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleCommand handles the /show-stats command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		common.RespondWithError(s, i, common.MsgGuildOnly)
		return err
	}

	if err := common.DeferEphemeral(s, i); err != nil {
		log.Errorf("Failed to defer show-stats interaction: %v", err)
		return err
	}

	stats, err := f.loadStats(context.Background(), guildID)
	if err != nil {
		common.HandleError(s, i, err, true)
		return err
	}

	embed, files := buildStatsEmbed(stats, common.GetGuildName(s, i.GuildID), f.cards)
	common.FollowUpEphemeralEmbed(s, i, embed, files)
	return nil
}

func (f *Feature) loadStats(ctx context.Context, guildID int64) (*entities.GuildStats, error) {
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, &services.PersistenceError{Op: "begin transaction", Err: err}
	}
	defer uow.Rollback()

	statsService := services.NewStatsService(uow.GuildStatsRepository(), uow.TicketRepository())

	stats, err := statsService.GetStats(ctx, guildID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, &services.PersistenceError{Op: "commit stats read", Err: err}
	}
	return stats, nil
}
