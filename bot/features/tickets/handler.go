package tickets

import (
	"context"
	"errors"

	"ticketbot/application"
	"ticketbot/bot/common"
	"ticketbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

var errInvalidInteraction = errors.New("interaction is missing guild or user data")

// HandleOpenButton opens a ticket for the user who clicked a panel option
func (f *Feature) HandleOpenButton(s *discordgo.Session, i *discordgo.InteractionCreate, button application.OpenTicketButton) error {
	ctx := context.Background()

	user := common.Invoker(i)
	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil || user == nil {
		common.RespondWithError(s, i, common.MsgGuildOnly)
		return errInvalidInteraction
	}
	userID, err := common.ParseSnowflake(user.ID)
	if err != nil {
		common.RespondWithError(s, i, common.MsgSomethingWentWrong)
		return err
	}

	// Channel creation plus the intro message can exceed the initial response window
	if err := common.DeferEphemeral(s, i); err != nil {
		log.Errorf("Failed to defer open ticket interaction: %v", err)
		return err
	}

	binding, err := f.registry.Resolve(ctx, guildID, button.PanelID, button.Index)
	if err != nil {
		common.HandleError(s, i, err, true)
		return err
	}

	ticket, err := f.ticketService.OpenTicket(ctx, interfaces.OpenTicketRequest{
		GuildID:   guildID,
		GuildName: common.GetGuildName(s, i.GuildID),
		UserID:    userID,
		Username:  user.Username,
		PanelID:   binding.PanelID,
		Label:     binding.Label,
	})
	if err != nil {
		common.HandleError(s, i, err, true)
		return err
	}

	common.FollowUpEphemeral(s, i, "Ticket created: "+common.GetChannelMention(ticket.ChannelID))
	return nil
}

// HandleCloseButton closes the ticket the close control is bound to
func (f *Feature) HandleCloseButton(s *discordgo.Session, i *discordgo.InteractionCreate, button application.CloseTicketButton) error {
	if i.ChannelID != common.FormatSnowflake(button.ChannelID) {
		log.WithFields(log.Fields{
			"channel_id": i.ChannelID,
			"bound_to":   button.ChannelID,
		}).Warn("Close button clicked outside its ticket channel")
	}
	return f.closeTicket(s, i, button.ChannelID, false)
}

// HandleCloseCommand handles the /close command
func (f *Feature) HandleCloseCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	channelID, err := common.ParseSnowflake(i.ChannelID)
	if err != nil {
		common.RespondWithError(s, i, common.MsgSomethingWentWrong)
		return err
	}
	return f.closeTicket(s, i, channelID, true)
}

func (f *Feature) closeTicket(s *discordgo.Session, i *discordgo.InteractionCreate, channelID int64, checkName bool) error {
	ctx := context.Background()

	user := common.Invoker(i)
	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil || user == nil {
		common.RespondWithError(s, i, common.MsgGuildOnly)
		return errInvalidInteraction
	}
	closedBy, err := common.ParseSnowflake(user.ID)
	if err != nil {
		common.RespondWithError(s, i, common.MsgSomethingWentWrong)
		return err
	}

	var channelName string
	if checkName {
		channel, err := common.GetChannel(s, common.FormatSnowflake(channelID))
		if err != nil {
			log.Errorf("Failed to look up channel %d: %v", channelID, err)
			common.RespondWithError(s, i, common.MsgSomethingWentWrong)
			return err
		}
		channelName = channel.Name
	}

	if err := common.DeferEphemeral(s, i); err != nil {
		log.Errorf("Failed to defer close ticket interaction: %v", err)
		return err
	}

	err = f.ticketService.CloseTicket(ctx, interfaces.CloseTicketRequest{
		GuildID:     guildID,
		ChannelID:   channelID,
		ChannelName: channelName,
		ClosedBy:    closedBy,
		CheckName:   checkName,
	})
	if err != nil {
		common.HandleError(s, i, err, true)
		return err
	}

	// The follow-up targets the deleted channel and may be rejected
	if _, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Content: "Ticket closed.",
		Flags:   discordgo.MessageFlagsEphemeral,
	}); err != nil {
		log.WithError(err).Debug("Close confirmation not delivered")
	}

	return nil
}

// HandleChannelDelete records the close of a ticket whose channel was deleted
func (f *Feature) HandleChannelDelete(s *discordgo.Session, c *discordgo.ChannelDelete) {
	if c.Channel == nil || c.Type != discordgo.ChannelTypeGuildText {
		return
	}

	guildID, err := common.ParseSnowflake(c.GuildID)
	if err != nil {
		return
	}
	channelID, err := common.ParseSnowflake(c.ID)
	if err != nil {
		return
	}

	if err := f.ticketService.HandleChannelDeleted(context.Background(), guildID, channelID); err != nil {
		log.WithFields(log.Fields{
			"guild_id":   guildID,
			"channel_id": channelID,
			"error":      err,
		}).Error("Failed to record deleted ticket channel")
	}
}
