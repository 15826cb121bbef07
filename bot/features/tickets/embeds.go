package tickets

import (
	"fmt"

	"ticketbot/bot/common"
	"ticketbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// buildIntroEmbed creates the first message of a ticket channel
func buildIntroEmbed(intro interfaces.TicketIntro) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Ticket Opened",
		Description: fmt.Sprintf("%s, thank you for opening a ticket!\n\nA staff member will be with you shortly.",
			common.GetUserMention(intro.UserID)),
		Color: common.ColorNeutral,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s • Support", intro.GuildName),
		},
	}

	if intro.Label != "" {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Topic", Value: intro.Label, Inline: true},
		}
	}

	return embed
}
