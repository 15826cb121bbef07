package setup

import (
	"context"
	"fmt"
	"strings"

	"ticketbot/bot/common"
	"ticketbot/domain/entities"
	"ticketbot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleCommand handles the /configure command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !common.IsUserAdmin(s, i) {
		common.RespondWithError(s, i, common.MsgAdminRequired)
		return nil
	}

	guildID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		common.RespondWithError(s, i, common.MsgGuildOnly)
		return err
	}

	categoryID, roleIDs, err := parseConfigureOptions(i.ApplicationCommandData().Options)
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	config, err := f.configure(context.Background(), guildID, categoryID, roleIDs)
	if err != nil {
		common.HandleError(s, i, err, false)
		return err
	}

	log.WithFields(log.Fields{
		"guild_id":    guildID,
		"category_id": config.CategoryID,
		"staff_roles": config.StaffRoleIDs,
		"admin":       common.InvokerID(i),
	}).Info("Ticket system configured")

	common.RespondEphemeral(s, i, formatConfigured(config))
	return nil
}

func (f *Feature) configure(ctx context.Context, guildID, categoryID int64, roleIDs []int64) (*entities.GuildConfig, error) {
	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, &services.PersistenceError{Op: "begin transaction", Err: err}
	}
	defer uow.Rollback()

	configService := services.NewGuildConfigService(uow.GuildConfigRepository())

	config, err := configService.Configure(ctx, guildID, categoryID, roleIDs)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, &services.PersistenceError{Op: "commit guild config", Err: err}
	}
	return config, nil
}

// parseConfigureOptions reads the category and the staff_role, staff_role_2 … options in slot order
func parseConfigureOptions(options []*discordgo.ApplicationCommandInteractionDataOption) (int64, []int64, error) {
	var categoryID int64
	roleSlots := make([]int64, MaxStaffRoles)

	for _, opt := range options {
		switch {
		case opt.Name == OptionCategory:
			id, err := common.ParseSnowflake(opt.ChannelValue(nil).ID)
			if err != nil {
				return 0, nil, services.NewValidationError("invalid category")
			}
			categoryID = id

		case opt.Name == OptionStaffRole || strings.HasPrefix(opt.Name, OptionStaffRole+"_"):
			slot := staffRoleSlot(opt.Name)
			if slot < 0 {
				continue
			}
			id, err := common.ParseSnowflake(opt.RoleValue(nil, "").ID)
			if err != nil {
				return 0, nil, services.NewValidationError("invalid staff role")
			}
			roleSlots[slot] = id
		}
	}

	roleIDs := make([]int64, 0, MaxStaffRoles)
	for _, id := range roleSlots {
		if id > 0 {
			roleIDs = append(roleIDs, id)
		}
	}
	return categoryID, roleIDs, nil
}

// staffRoleSlot maps staff_role to 0 and staff_role_N to N-1; -1 for unknown names
func staffRoleSlot(name string) int {
	if name == OptionStaffRole {
		return 0
	}
	for n := 2; n <= MaxStaffRoles; n++ {
		if name == StaffRoleOptionName(n) {
			return n - 1
		}
	}
	return -1
}

// StaffRoleOptionName returns the option name of the n-th staff role slot, starting at 1
func StaffRoleOptionName(n int) string {
	if n <= 1 {
		return OptionStaffRole
	}
	return fmt.Sprintf("%s_%d", OptionStaffRole, n)
}

func formatConfigured(config *entities.GuildConfig) string {
	roles := make([]string, len(config.StaffRoleIDs))
	for i, id := range config.StaffRoleIDs {
		roles[i] = common.GetRoleMention(id)
	}
	return fmt.Sprintf("Setup completed.\nCategory: %s\nStaff roles: %s",
		common.GetChannelMention(config.CategoryID), strings.Join(roles, ", "))
}
