package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ParseSnowflake converts a Discord id string to int64
func ParseSnowflake(id string) (int64, error) {
	return strconv.ParseInt(id, 10, 64)
}

// FormatSnowflake converts an int64 id to its Discord string form
func FormatSnowflake(id int64) string {
	return strconv.FormatInt(id, 10)
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID int64) string {
	return "<@" + FormatSnowflake(userID) + ">"
}

// GetChannelMention returns a Discord mention string for a channel
func GetChannelMention(channelID int64) string {
	return "<#" + FormatSnowflake(channelID) + ">"
}

// GetRoleMention returns a Discord mention string for a role
func GetRoleMention(roleID int64) string {
	return "<@&" + FormatSnowflake(roleID) + ">"
}

// Invoker returns the user behind an interaction, for guild and DM interactions alike
func Invoker(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// InvokerID returns the id string of the interaction user, or "" if unknown
func InvokerID(i *discordgo.InteractionCreate) string {
	if user := Invoker(i); user != nil {
		return user.ID
	}
	return ""
}

// IsUserAdmin checks if the interaction member has administrator permissions in the guild.
// Interaction payloads carry the member's computed permissions; the role lookup covers
// sessions where they are missing.
func IsUserAdmin(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	for _, roleID := range i.Member.Roles {
		role, err := s.State.Role(i.GuildID, roleID)
		if err != nil {
			continue
		}
		if role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	log.WithFields(log.Fields{
		"guild_id": i.GuildID,
		"user_id":  InvokerID(i),
	}).Debug("Member lacks administrator permission")
	return false
}
