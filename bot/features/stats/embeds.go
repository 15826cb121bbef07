package stats

import (
	"bytes"
	"fmt"

	"ticketbot/bot/common"
	"ticketbot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const cardFileName = "ticket-stats.png"

// buildStatsEmbed creates the statistics embed and, when the card renders, its attachment
func buildStatsEmbed(stats *entities.GuildStats, guildName string, cards *CardGenerator) (*discordgo.MessageEmbed, []*discordgo.File) {
	embed := &discordgo.MessageEmbed{
		Title:       "Ticket Statistics",
		Description: fmt.Sprintf("Total tickets created: **%s**", common.FormatCount(stats.TotalTickets)),
		Color:       common.ColorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Open tickets", Value: common.FormatCount(stats.OpenTickets), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s • Stats", guildName),
		},
	}

	imageData, err := cards.Generate(guildName, stats)
	if err != nil {
		log.WithError(err).Error("Failed to generate stats card")
		return embed, nil
	}

	embed.Image = &discordgo.MessageEmbedImage{
		URL: "attachment://" + cardFileName,
	}
	return embed, []*discordgo.File{{
		Name:        cardFileName,
		ContentType: "image/png",
		Reader:      bytes.NewReader(imageData),
	}}
}
