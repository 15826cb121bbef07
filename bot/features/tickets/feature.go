package tickets

import (
	"ticketbot/application"
	"ticketbot/domain/interfaces"
	"ticketbot/domain/services"

	"github.com/bwmarrin/discordgo"
)

// Feature handles opening and closing tickets
type Feature struct {
	session       *discordgo.Session
	registry      *application.PanelRegistry
	ticketService interfaces.TicketService
}

// NewFeature creates a new tickets feature instance. configRepo is read outside any
// transaction so no database transaction stays open across Discord API calls.
func NewFeature(
	session *discordgo.Session,
	registry *application.PanelRegistry,
	configRepo interfaces.GuildConfigRepository,
	ledger interfaces.TicketLedger,
) *Feature {
	return &Feature{
		session:       session,
		registry:      registry,
		ticketService: services.NewTicketService(configRepo, NewDiscordGateway(session), ledger),
	}
}
