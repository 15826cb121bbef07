package bot

import (
	"fmt"

	"ticketbot/bot/features/setup"
	"ticketbot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Slash command names
const (
	CommandConfigure   = "configure"
	CommandCreatePanel = "create-panel"
	CommandClose       = "close"
	CommandShowStats   = "show-stats"
	CommandHealthCheck = "health-check"
)

// commandDefinitions returns every slash command the bot owns
func commandDefinitions() []*discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)
	guildOnly := false

	configureOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         setup.OptionCategory,
			Description:  "Category new ticket channels are created in",
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
			Required:     true,
		},
	}
	for n := 1; n <= setup.MaxStaffRoles; n++ {
		configureOptions = append(configureOptions, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        setup.StaffRoleOptionName(n),
			Description: fmt.Sprintf("Staff role %d that can see tickets", n),
			Required:    n == 1,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandConfigure,
			Description:              "Configure the ticket system",
			DefaultMemberPermissions: &adminOnly,
			DMPermission:             &guildOnly,
			Options:                  configureOptions,
		},
		{
			Name:                     CommandCreatePanel,
			Description:              "Create a ticket panel in this channel",
			DefaultMemberPermissions: &adminOnly,
			DMPermission:             &guildOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Name of the panel",
					MaxLength:   entities.MaxPanelNameRunes,
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "options",
					Description: fmt.Sprintf("Up to %d button labels, separated by commas", entities.MaxPanelOptions),
					Required:    true,
				},
			},
		},
		{
			Name:         CommandClose,
			Description:  "Close the current ticket",
			DMPermission: &guildOnly,
		},
		{
			Name:         CommandShowStats,
			Description:  "Show ticket statistics",
			DMPermission: &guildOnly,
		},
		{
			Name:        CommandHealthCheck,
			Description: "Report bot latency and dependency health",
		},
	}
}

// registerCommands registers all slash commands with Discord, to a single guild when configured
func (b *Bot) registerCommands() error {
	for _, cmd := range commandDefinitions() {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.CommandGuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	scope := "global"
	if b.config.CommandGuildID != "" {
		scope = "guild " + b.config.CommandGuildID
	}
	log.WithField("scope", scope).Info("Slash commands registered")
	return nil
}
