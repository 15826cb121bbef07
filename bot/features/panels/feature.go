package panels

import (
	"ticketbot/application"

	"github.com/bwmarrin/discordgo"
)

// Feature handles ticket panel creation
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	registry   *application.PanelRegistry
}

// NewFeature creates a new panels feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory, registry *application.PanelRegistry) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		registry:   registry,
	}
}
