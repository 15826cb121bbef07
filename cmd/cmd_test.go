package cmd

import (
	"bytes"
	"testing"

	"ticketbot/config"
	"ticketbot/domain/entities"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)

	_, err = parseSteps([]string{"0"})
	assert.Error(t, err)

	_, err = parseSteps([]string{"many"})
	assert.Error(t, err)
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand()

	migrate, _, err := root.Find([]string{"migrate"})
	require.NoError(t, err)
	assert.Equal(t, "migrate", migrate.Name())

	for _, name := range []string{"up", "down", "status"} {
		sub, _, err := root.Find([]string{"migrate", name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	list, _, err := root.Find([]string{"panels", "list"})
	require.NoError(t, err)
	assert.NotNil(t, list.Flags().Lookup("guild"))
}

func TestConfigureLogging(t *testing.T) {
	originalLevel := log.GetLevel()
	originalFormatter := log.StandardLogger().Formatter
	t.Cleanup(func() {
		log.SetLevel(originalLevel)
		log.SetFormatter(originalFormatter)
	})

	cfg := config.NewTestConfig()
	cfg.LogLevel = "warn"
	cfg.Environment = "production"
	ConfigureLogging(cfg)

	assert.Equal(t, log.WarnLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	cfg.LogLevel = "verbose"
	cfg.Environment = "development"
	ConfigureLogging(cfg)

	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}

func TestWritePanelTable(t *testing.T) {
	channelID, messageID := int64(300), int64(400)
	panels := []*entities.Panel{
		{ID: 1, GuildID: 10, Name: "Support", Options: []string{"Billing", "Tech"}, ChannelID: &channelID, MessageID: &messageID},
		{ID: 2, GuildID: 20, Name: "Appeals", Options: []string{"Ban"}},
	}

	var all bytes.Buffer
	require.NoError(t, writePanelTable(&all, panels, 0))
	assert.Contains(t, all.String(), "Billing, Tech")
	assert.Contains(t, all.String(), "300/400")
	assert.Contains(t, all.String(), "Appeals")

	var filtered bytes.Buffer
	require.NoError(t, writePanelTable(&filtered, panels, 20))
	assert.NotContains(t, filtered.String(), "Support")
	assert.Contains(t, filtered.String(), "Appeals")
}
