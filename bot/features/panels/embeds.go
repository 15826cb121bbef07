package panels

import (
	"fmt"

	"ticketbot/bot/common"
	"ticketbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// buildPanelEmbed creates the embed shown above the panel buttons
func buildPanelEmbed(panel *entities.Panel, guildName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       panel.Name,
		Description: "Click a button below to open a ticket.",
		Color:       common.ColorNeutral,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Ticket Panel • %s", guildName),
		},
	}
}
