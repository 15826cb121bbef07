package testutil

import (
	"time"

	"ticketbot/domain/entities"
)

// CreateTestPanel creates an unsaved panel with the given options
func CreateTestPanel(guildID int64, name string, options ...string) *entities.Panel {
	if len(options) == 0 {
		options = []string{"General"}
	}
	return &entities.Panel{
		GuildID: guildID,
		Name:    name,
		Options: options,
	}
}

// CreateTestTicket creates an unsaved open ticket
func CreateTestTicket(channelID, openerID int64, label string) *entities.Ticket {
	return &entities.Ticket{
		ChannelID: channelID,
		OpenerID:  openerID,
		Label:     label,
		OpenedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}
