package stats

import (
	"ticketbot/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles the ticket statistics command
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	cards      *CardGenerator
}

// NewFeature creates a new stats feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		cards:      NewCardGenerator(),
	}
}
