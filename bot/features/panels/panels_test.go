package panels

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"ticketbot/application"
	"ticketbot/bot/testutil"
	"ticketbot/domain/entities"
	"ticketbot/domain/events"
	"ticketbot/domain/services"
	"ticketbot/domain/testhelpers"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeUnitOfWorkFactory struct {
	uow *testhelpers.FakeUnitOfWork
}

func (f *fakeUnitOfWorkFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	return f.uow
}

func TestBuildPanelComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		options      []string
		expectedRows []int
	}{
		{"single option", []string{"Help"}, []int{1}},
		{"exactly one row", []string{"a", "b", "c", "d", "e"}, []int{5}},
		{"partial second row", []string{"a", "b", "c", "d", "e", "f", "g"}, []int{5, 2}},
		{"maximum options", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, []int{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			panel := &entities.Panel{ID: 12, Options: tt.options}
			rows := buildPanelComponents(panel)
			require.Len(t, rows, len(tt.expectedRows))

			index := 0
			for r, component := range rows {
				row, ok := component.(discordgo.ActionsRow)
				require.True(t, ok)
				require.Len(t, row.Components, tt.expectedRows[r])

				for _, c := range row.Components {
					button := c.(discordgo.Button)
					assert.Equal(t, tt.options[index], button.Label)
					assert.Equal(t, discordgo.SecondaryButton, button.Style)

					event, ok := application.ParseButtonID(button.CustomID)
					require.True(t, ok)
					assert.Equal(t, application.OpenTicketButton{PanelID: 12, Index: index}, event)
					index++
				}
			}
		})
	}
}

func TestBuildPanelEmbed(t *testing.T) {
	t.Parallel()

	embed := buildPanelEmbed(&entities.Panel{Name: "Support"}, "Acme")
	assert.Equal(t, "Support", embed.Title)
	assert.Equal(t, "Click a button below to open a ticket.", embed.Description)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Ticket Panel • Acme", embed.Footer.Text)
}

func newTestFeature(t *testing.T) (*Feature, *testhelpers.FakeUnitOfWork, *testutil.DiscordAPI) {
	t.Helper()

	session, api := testutil.NewSession(t)
	uow := testhelpers.NewFakeUnitOfWork()
	uow.Panels.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	return NewFeature(session, &fakeUnitOfWorkFactory{uow: uow}, application.NewPanelRegistry(uow.Panels)), uow, api
}

func expectPanelCreate(uow *testhelpers.FakeUnitOfWork) {
	uow.Panels.On("Create", mock.Anything, mock.AnythingOfType("*entities.Panel")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.Panel).ID = 9
		}).
		Return(nil)
}

var supportTarget = panelTarget{channelID: "300", guildName: "Acme"}

func TestCreatePanel(t *testing.T) {
	t.Parallel()

	t.Run("commits the panel with its message location", func(t *testing.T) {
		t.Parallel()

		f, uow, api := newTestFeature(t)
		expectPanelCreate(uow)
		uow.Panels.On("SetMessage", mock.Anything, int64(9), int64(300), int64(400)).Return(nil)
		api.Handle("POST", "/channels/300/messages", http.StatusOK, `{"id":"400","channel_id":"300"}`)

		panel, err := f.createPanel(context.Background(), f.session, supportTarget, 1, 42, "Support", "Billing, Tech")

		require.NoError(t, err)
		assert.Equal(t, int64(9), panel.ID)
		assert.Equal(t, []string{"Billing", "Tech"}, panel.Options)
		assert.True(t, panel.HasMessage())
		assert.True(t, uow.Committed)
		require.Len(t, uow.Published, 1)
		assert.Equal(t, events.EventTypePanelCreated, uow.Published[0].Type())

		binding, err := f.registry.Resolve(context.Background(), 1, 9, 1)
		require.NoError(t, err)
		assert.Equal(t, "Tech", binding.Label)
		uow.Panels.AssertExpectations(t)
	})

	t.Run("rejects invalid options without writing", func(t *testing.T) {
		t.Parallel()

		f, uow, api := newTestFeature(t)

		_, err := f.createPanel(context.Background(), f.session, supportTarget, 1, 42, "Support", " , ,")

		var validationErr *services.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.False(t, uow.Committed)
		assert.True(t, uow.RolledBack)
		assert.Empty(t, api.Requests())
		uow.Panels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reports a failed transaction start", func(t *testing.T) {
		t.Parallel()

		f, uow, _ := newTestFeature(t)
		uow.BeginErr = errors.New("pool closed")

		_, err := f.createPanel(context.Background(), f.session, supportTarget, 1, 42, "Support", "Billing")

		var persistenceErr *services.PersistenceError
		require.ErrorAs(t, err, &persistenceErr)
	})

	t.Run("discards the panel when the message is rejected", func(t *testing.T) {
		t.Parallel()

		f, uow, api := newTestFeature(t)
		expectPanelCreate(uow)
		api.Handle("POST", "/channels/300/messages", http.StatusForbidden, `{"message":"Missing Access","code":50001}`)

		_, err := f.createPanel(context.Background(), f.session, supportTarget, 1, 42, "Support", "Billing")

		var platformErr *services.ExternalPlatformError
		require.ErrorAs(t, err, &platformErr)
		assert.False(t, uow.Committed)
		assert.True(t, uow.RolledBack)
		assert.Empty(t, uow.Published)
		assert.Zero(t, f.registry.Len())
		uow.Panels.AssertNotCalled(t, "SetMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("removes the posted message when the commit fails", func(t *testing.T) {
		t.Parallel()

		f, uow, api := newTestFeature(t)
		expectPanelCreate(uow)
		uow.Panels.On("SetMessage", mock.Anything, int64(9), int64(300), int64(400)).Return(nil)
		uow.CommitErr = errors.New("connection reset")
		api.Handle("POST", "/channels/300/messages", http.StatusOK, `{"id":"400","channel_id":"300"}`)
		api.Handle("DELETE", "/channels/300/messages/400", http.StatusNoContent, "")

		_, err := f.createPanel(context.Background(), f.session, supportTarget, 1, 42, "Support", "Billing")

		var persistenceErr *services.PersistenceError
		require.ErrorAs(t, err, &persistenceErr)
		assert.True(t, api.Called("DELETE", "/channels/300/messages/400"))
		assert.Empty(t, uow.Published)
		assert.Zero(t, f.registry.Len())
	})
}

func createPanelInteraction(userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:        "900",
		AppID:     "800",
		Token:     "tok",
		Type:      discordgo.InteractionApplicationCommand,
		GuildID:   "1",
		ChannelID: "300",
		Member: &discordgo.Member{
			User:        &discordgo.User{ID: userID, Username: "admin"},
			Permissions: discordgo.PermissionAdministrator,
		},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "create-panel",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "Support"},
				{Name: "options", Type: discordgo.ApplicationCommandOptionString, Value: "Billing, Tech"},
			},
		},
	}}
}

func TestHandleCommand(t *testing.T) {
	t.Parallel()

	t.Run("creates the panel and confirms", func(t *testing.T) {
		t.Parallel()

		f, uow, api := newTestFeature(t)
		expectPanelCreate(uow)
		uow.Panels.On("SetMessage", mock.Anything, int64(9), int64(300), int64(400)).Return(nil)
		api.Handle("GET", "/guilds/1", http.StatusOK, `{"id":"1","name":"Acme"}`)
		api.Handle("POST", "/channels/300/messages", http.StatusOK, `{"id":"400","channel_id":"300"}`)

		err := f.HandleCommand(f.session, createPanelInteraction("42"))

		require.NoError(t, err)
		assert.True(t, uow.Committed)
		assert.Equal(t, 1, f.registry.Len())
		assert.True(t, api.Called("POST", "/interactions/900/tok/callback"))
		assert.True(t, api.Called("POST", "/webhooks/800/tok"))
	})

	t.Run("leaves nothing behind when Discord rejects the panel message", func(t *testing.T) {
		t.Parallel()

		f, uow, api := newTestFeature(t)
		expectPanelCreate(uow)
		api.Handle("POST", "/channels/300/messages", http.StatusForbidden, `{"message":"Missing Access","code":50001}`)

		err := f.HandleCommand(f.session, createPanelInteraction("42"))

		var platformErr *services.ExternalPlatformError
		require.ErrorAs(t, err, &platformErr)
		assert.False(t, uow.Committed)
		assert.Empty(t, uow.Published)
		assert.Zero(t, f.registry.Len())
		assert.True(t, api.Called("POST", "/webhooks/800/tok"))
	})

	t.Run("rejects an unreadable invoker id", func(t *testing.T) {
		t.Parallel()

		f, uow, api := newTestFeature(t)

		err := f.HandleCommand(f.session, createPanelInteraction("not-a-snowflake"))

		require.Error(t, err)
		assert.False(t, uow.Began)
		assert.True(t, api.Called("POST", "/interactions/900/tok/callback"))
		uow.Panels.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("requires administrator", func(t *testing.T) {
		t.Parallel()

		f, uow, _ := newTestFeature(t)
		i := createPanelInteraction("42")
		i.Member.Permissions = 0

		require.NoError(t, f.HandleCommand(f.session, i))
		assert.False(t, uow.Began)
	})
}
