package tickets

import (
	"context"
	"errors"
	"net/http"

	"ticketbot/bot/common"
	"ticketbot/domain/entities"
	"ticketbot/domain/interfaces"

	"github.com/bwmarrin/discordgo"
)

// DiscordGateway implements interfaces.ChannelGateway on a discordgo session
type DiscordGateway struct {
	session *discordgo.Session
}

// NewDiscordGateway creates a channel gateway backed by the session
func NewDiscordGateway(session *discordgo.Session) *DiscordGateway {
	return &DiscordGateway{session: session}
}

var _ interfaces.ChannelGateway = (*DiscordGateway)(nil)

// CategoryExists reports whether categoryID is a category channel of the guild
func (g *DiscordGateway) CategoryExists(ctx context.Context, guildID, categoryID int64) (bool, error) {
	id := common.FormatSnowflake(categoryID)

	channel, err := g.session.State.Channel(id)
	if err != nil {
		channel, err = g.session.Channel(id, discordgo.WithContext(ctx))
		if err != nil {
			if isNotFound(err) {
				return false, nil
			}
			return false, err
		}
	}

	return channel.Type == discordgo.ChannelTypeGuildCategory &&
		channel.GuildID == common.FormatSnowflake(guildID), nil
}

// ExistingRoles filters roleIDs down to roles present in the guild, keeping order
func (g *DiscordGateway) ExistingRoles(ctx context.Context, guildID int64, roleIDs []int64) ([]int64, error) {
	roles, err := g.session.GuildRoles(common.FormatSnowflake(guildID), discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return filterExistingRoles(roles, roleIDs), nil
}

// CreateTicketChannel creates a private text channel under the category
func (g *DiscordGateway) CreateTicketChannel(ctx context.Context, guildID, categoryID int64, name string, overwrites []entities.PermissionOverwrite) (int64, error) {
	channel, err := g.session.GuildChannelCreateComplex(common.FormatSnowflake(guildID), discordgo.GuildChannelCreateData{
		Name:                 name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             common.FormatSnowflake(categoryID),
		PermissionOverwrites: toDiscordOverwrites(overwrites),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	return common.ParseSnowflake(channel.ID)
}

// SendTicketIntro posts the intro embed and close button
func (g *DiscordGateway) SendTicketIntro(ctx context.Context, channelID int64, intro interfaces.TicketIntro) error {
	_, err := g.session.ChannelMessageSendComplex(common.FormatSnowflake(channelID), &discordgo.MessageSend{
		Content:    common.GetUserMention(intro.UserID),
		Embeds:     []*discordgo.MessageEmbed{buildIntroEmbed(intro)},
		Components: buildCloseComponents(channelID),
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Users: []string{common.FormatSnowflake(intro.UserID)},
		},
	}, discordgo.WithContext(ctx))
	return err
}

// DeleteChannel removes a channel. Deleting a channel that is already gone succeeds.
func (g *DiscordGateway) DeleteChannel(ctx context.Context, channelID int64) error {
	_, err := g.session.ChannelDelete(common.FormatSnowflake(channelID), discordgo.WithContext(ctx))
	if err != nil && isNotFound(err) {
		return nil
	}
	return err
}

func toDiscordOverwrites(overwrites []entities.PermissionOverwrite) []*discordgo.PermissionOverwrite {
	result := make([]*discordgo.PermissionOverwrite, 0, len(overwrites))
	for _, o := range overwrites {
		overwriteType := discordgo.PermissionOverwriteTypeRole
		if o.TargetType == entities.OverwriteTargetMember {
			overwriteType = discordgo.PermissionOverwriteTypeMember
		}
		result = append(result, &discordgo.PermissionOverwrite{
			ID:    common.FormatSnowflake(o.TargetID),
			Type:  overwriteType,
			Allow: o.Allow,
			Deny:  o.Deny,
		})
	}
	return result
}

func filterExistingRoles(roles []*discordgo.Role, roleIDs []int64) []int64 {
	present := make(map[string]bool, len(roles))
	for _, role := range roles {
		present[role.ID] = true
	}

	existing := make([]int64, 0, len(roleIDs))
	for _, id := range roleIDs {
		if present[common.FormatSnowflake(id)] {
			existing = append(existing, id)
		}
	}
	return existing
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Response != nil &&
		restErr.Response.StatusCode == http.StatusNotFound
}
