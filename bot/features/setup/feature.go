package setup

import (
	"ticketbot/application"

	"github.com/bwmarrin/discordgo"
)

// Option names of the /configure command
const (
	OptionCategory  = "category"
	OptionStaffRole = "staff_role"
	MaxStaffRoles   = 5
)

// Feature handles the ticket system configuration command
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new setup feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
	}
}
