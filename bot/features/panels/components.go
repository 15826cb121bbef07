package panels

import (
	"ticketbot/application"
	"ticketbot/bot/common"
	"ticketbot/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// buildPanelComponents creates one button per panel option, five per row
func buildPanelComponents(panel *entities.Panel) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var current []discordgo.MessageComponent

	for index, label := range panel.Options {
		current = append(current, discordgo.Button{
			Label:    label,
			Style:    discordgo.SecondaryButton,
			CustomID: application.OpenTicketButtonID(panel.ID, index),
		})

		if len(current) == common.MaxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: current})
			current = nil
		}
	}

	if len(current) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: current})
	}

	return rows
}
