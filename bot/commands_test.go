package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandDefinitions(t *testing.T) {
	commands := commandDefinitions()

	byName := make(map[string]*discordgo.ApplicationCommand, len(commands))
	for _, cmd := range commands {
		byName[cmd.Name] = cmd
	}
	require.Len(t, byName, 5)

	t.Run("admin commands require administrator", func(t *testing.T) {
		for _, name := range []string{CommandConfigure, CommandCreatePanel} {
			cmd := byName[name]
			require.NotNil(t, cmd, name)
			require.NotNil(t, cmd.DefaultMemberPermissions, name)
			assert.Equal(t, int64(discordgo.PermissionAdministrator), *cmd.DefaultMemberPermissions, name)
		}
		for _, name := range []string{CommandClose, CommandShowStats, CommandHealthCheck} {
			assert.Nil(t, byName[name].DefaultMemberPermissions, name)
		}
	})

	t.Run("configure takes a category and five role slots", func(t *testing.T) {
		options := byName[CommandConfigure].Options
		require.Len(t, options, 6)

		assert.Equal(t, "category", options[0].Name)
		assert.Equal(t, []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory}, options[0].ChannelTypes)
		assert.True(t, options[0].Required)

		expected := []string{"staff_role", "staff_role_2", "staff_role_3", "staff_role_4", "staff_role_5"}
		for i, name := range expected {
			opt := options[i+1]
			assert.Equal(t, name, opt.Name)
			assert.Equal(t, discordgo.ApplicationCommandOptionRole, opt.Type)
			assert.Equal(t, i == 0, opt.Required, name)
		}
	})

	t.Run("create-panel takes name and options", func(t *testing.T) {
		options := byName[CommandCreatePanel].Options
		require.Len(t, options, 2)
		assert.Equal(t, "name", options[0].Name)
		assert.Equal(t, "options", options[1].Name)
		assert.True(t, options[0].Required)
		assert.True(t, options[1].Required)
	})
}
