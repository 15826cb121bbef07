package common

import (
	"errors"

	"ticketbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ErrorMessage maps a service error to the text shown to the invoking user.
// Platform and store failures are reported generically.
func ErrorMessage(err error) string {
	var validationErr *services.ValidationError
	var platformErr *services.ExternalPlatformError
	var persistenceErr *services.PersistenceError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, services.ErrConfigurationMissing):
		return "Bot is not configured. Use /configure."
	case errors.Is(err, services.ErrNotATicketChannel):
		return "This is not a ticket channel."
	case errors.As(err, &platformErr):
		return "Discord rejected the request. Check that the bot can manage channels in the ticket category."
	case errors.As(err, &persistenceErr):
		return MsgSomethingWentWrong
	default:
		return MsgSomethingWentWrong
	}
}

// isUserError reports whether err is caused by user input rather than a failure
func isUserError(err error) bool {
	var validationErr *services.ValidationError
	return errors.As(err, &validationErr) ||
		errors.Is(err, services.ErrConfigurationMissing) ||
		errors.Is(err, services.ErrNotATicketChannel)
}

// RespondWithError sends an error message as an interaction response
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	RespondEphemeral(s, i, "❌ "+message)
}

// FollowUpWithError sends an error message as a follow-up to a deferred interaction
func FollowUpWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	FollowUpEphemeral(s, i, "❌ "+message)
}

// HandleError logs err with interaction context and reports it to the user
func HandleError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, deferred bool) {
	fields := log.Fields{
		"guild_id":    i.GuildID,
		"channel_id":  i.ChannelID,
		"user_id":     InvokerID(i),
		"interaction": InteractionName(i),
		"error":       err.Error(),
	}
	if isUserError(err) {
		log.WithFields(fields).Debug("Rejected interaction")
	} else {
		log.WithFields(fields).Error("Interaction failed")
	}

	message := ErrorMessage(err)
	if deferred {
		FollowUpWithError(s, i, message)
	} else {
		RespondWithError(s, i, message)
	}
}

// InteractionName returns the command name or component custom id of an interaction
func InteractionName(i *discordgo.InteractionCreate) string {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		return i.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		return i.MessageComponentData().CustomID
	default:
		return i.Type.String()
	}
}
