package panels

import (
	"context"
	"fmt"

	"ticketbot/bot/common"
	"ticketbot/domain/entities"
	"ticketbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleCommand handles the /create-panel command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !common.IsUserAdmin(s, i) {
		common.RespondWithError(s, i, common.MsgAdminRequired)
		return nil
	}

	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		common.RespondWithError(s, i, common.MsgGuildOnly)
		return err
	}
	createdBy, err := common.ParseSnowflake(common.InvokerID(i))
	if err != nil {
		common.RespondWithError(s, i, common.MsgSomethingWentWrong)
		return err
	}

	var name, rawOptions string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "name":
			name = opt.StringValue()
		case "options":
			rawOptions = opt.StringValue()
		}
	}

	if err := common.DeferEphemeral(s, i); err != nil {
		log.Errorf("Failed to defer create-panel interaction: %v", err)
		return err
	}

	target := panelTarget{
		channelID: i.ChannelID,
		guildName: common.GetGuildName(s, i.GuildID),
	}
	if _, err := f.createPanel(context.Background(), s, target, guildID, createdBy, name, rawOptions); err != nil {
		common.HandleError(s, i, err, true)
		return err
	}

	common.FollowUpEphemeral(s, i, "Panel created.")
	return nil
}

// panelTarget is where a new panel message gets posted
type panelTarget struct {
	channelID string
	guildName string
}

// createPanel stores the panel and posts its message in one transaction. The panel row
// and its event are only committed once the message exists.
func (f *Feature) createPanel(ctx context.Context, s *discordgo.Session, target panelTarget, guildID, createdBy int64, name, rawOptions string) (*entities.Panel, error) {
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, &services.PersistenceError{Op: "begin transaction", Err: err}
	}
	defer uow.Rollback()

	panelService := services.NewPanelService(uow.PanelRepository(), uow.EventBus())

	panel, err := panelService.CreatePanel(ctx, guildID, createdBy, name, rawOptions)
	if err != nil {
		return nil, err
	}

	// Bindings go live before the message exists so no click can race the registry
	f.registry.Register(panel)

	message, err := s.ChannelMessageSendComplex(target.channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{buildPanelEmbed(panel, target.guildName)},
		Components: buildPanelComponents(panel),
	}, discordgo.WithContext(ctx))
	if err != nil {
		f.registry.Unregister(panel.ID)
		return nil, &services.ExternalPlatformError{Op: "post panel message", Err: err}
	}

	located, err := locatePanel(panel, message)
	if err != nil {
		// The panel works without its recorded location
		log.WithFields(log.Fields{
			"panelID": panel.ID,
			"error":   err,
		}).Warn("Panel message has an unusable location")
		located = panel
	} else if err := panelService.RecordPanelMessage(ctx, panel.ID, *located.ChannelID, *located.MessageID); err != nil {
		f.abandonPanel(ctx, s, panel.ID, message)
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		f.abandonPanel(ctx, s, panel.ID, message)
		return nil, &services.PersistenceError{Op: "commit panel", Err: err}
	}

	f.registry.Register(located)
	return located, nil
}

// abandonPanel undoes the visible side of a panel whose row was not committed
func (f *Feature) abandonPanel(ctx context.Context, s *discordgo.Session, panelID int64, message *discordgo.Message) {
	f.registry.Unregister(panelID)
	if err := s.ChannelMessageDelete(message.ChannelID, message.ID, discordgo.WithContext(ctx)); err != nil {
		log.WithFields(log.Fields{
			"panelID":   panelID,
			"messageID": message.ID,
			"error":     err,
		}).Error("Failed to remove message of abandoned panel")
	}
}

// locatePanel returns a copy of the panel carrying the posted message location
func locatePanel(panel *entities.Panel, message *discordgo.Message) (*entities.Panel, error) {
	channelID, err := common.ParseSnowflake(message.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("invalid channel id %q: %w", message.ChannelID, err)
	}
	messageID, err := common.ParseSnowflake(message.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid message id %q: %w", message.ID, err)
	}

	located := *panel
	located.ChannelID = &channelID
	located.MessageID = &messageID
	return &located, nil
}
