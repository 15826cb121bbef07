package common

import (
	"github.com/bwmarrin/discordgo"
)

// GetGuildName returns the guild name from the state cache, falling back to the REST API
func GetGuildName(s *discordgo.Session, guildID string) string {
	if s.State != nil {
		if guild, err := s.State.Guild(guildID); err == nil && guild.Name != "" {
			return guild.Name
		}
	}
	guild, err := s.Guild(guildID)
	if err != nil || guild == nil {
		return "this server"
	}
	return guild.Name
}

// GetChannel returns a channel from the state cache, falling back to the REST API
func GetChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	if s.State != nil {
		if channel, err := s.State.Channel(channelID); err == nil {
			return channel, nil
		}
	}
	return s.Channel(channelID)
}
