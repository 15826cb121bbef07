package tickets

import (
	"ticketbot/application"

	"github.com/bwmarrin/discordgo"
)

// buildCloseComponents creates the close control posted inside a ticket channel
func buildCloseComponents(channelID int64) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Close Ticket",
					Style:    discordgo.DangerButton,
					CustomID: application.CloseTicketButtonID(channelID),
					Emoji:    &discordgo.ComponentEmoji{Name: "🔒"},
				},
			},
		},
	}
}
