package application

import (
	"context"
	"errors"
	"testing"

	"ticketbot/domain/entities"
	"ticketbot/domain/services"
	"ticketbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPanelRegistry_RestoreAll(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockPanelRepository)
	repo.On("ListAll", mock.Anything).Return([]*entities.Panel{
		{ID: 1, GuildID: 10, Name: "Support", Options: []string{"Billing", "Tech"}},
		{ID: 2, GuildID: 20, Name: "Appeals", Options: []string{"Ban"}},
	}, nil)

	registry := NewPanelRegistry(repo)
	count, err := registry.RestoreAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, registry.Len())

	// Restored bindings resolve without touching the store again
	binding, err := registry.Resolve(context.Background(), 10, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Binding{PanelID: 1, GuildID: 10, Index: 0, Label: "Billing"}, binding)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPanelRegistry_RestoreAllError(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockPanelRepository)
	repo.On("ListAll", mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := NewPanelRegistry(repo).RestoreAll(context.Background())
	assert.Error(t, err)
}

func TestPanelRegistry_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		guildID   int64
		panelID   int64
		index     int
		setupMock func(*testhelpers.MockPanelRepository)
		wantLabel string
		wantErr   any
	}{
		{
			name:      "registered panel",
			guildID:   10,
			panelID:   1,
			index:     1,
			wantLabel: "Tech",
		},
		{
			name:    "falls back to the store",
			guildID: 10,
			panelID: 5,
			index:   0,
			setupMock: func(repo *testhelpers.MockPanelRepository) {
				repo.On("GetByID", mock.Anything, int64(5)).
					Return(&entities.Panel{ID: 5, GuildID: 10, Options: []string{"Sales"}}, nil).Once()
			},
			wantLabel: "Sales",
		},
		{
			name:    "unknown panel",
			guildID: 10,
			panelID: 99,
			setupMock: func(repo *testhelpers.MockPanelRepository) {
				repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)
			},
			wantErr: &services.ValidationError{},
		},
		{
			name:    "index out of range",
			guildID: 10,
			panelID: 1,
			index:   2,
			wantErr: &services.ValidationError{},
		},
		{
			name:    "panel from another guild",
			guildID: 20,
			panelID: 1,
			index:   0,
			wantErr: &services.ValidationError{},
		},
		{
			name:    "store failure",
			guildID: 10,
			panelID: 7,
			setupMock: func(repo *testhelpers.MockPanelRepository) {
				repo.On("GetByID", mock.Anything, int64(7)).Return(nil, errors.New("timeout"))
			},
			wantErr: &services.PersistenceError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := new(testhelpers.MockPanelRepository)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			registry := NewPanelRegistry(repo)
			registry.Register(&entities.Panel{ID: 1, GuildID: 10, Options: []string{"Billing", "Tech"}})

			binding, err := registry.Resolve(context.Background(), tt.guildID, tt.panelID, tt.index)

			switch want := tt.wantErr.(type) {
			case *services.ValidationError:
				assert.ErrorAs(t, err, &want)
			case *services.PersistenceError:
				assert.ErrorAs(t, err, &want)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantLabel, binding.Label)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestPanelRegistry_StoreHitIsCached(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockPanelRepository)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&entities.Panel{ID: 5, GuildID: 10, Options: []string{"Sales"}}, nil).Once()

	registry := NewPanelRegistry(repo)
	for i := 0; i < 3; i++ {
		_, err := registry.Resolve(context.Background(), 10, 5, 0)
		require.NoError(t, err)
	}

	repo.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestPanelRegistry_Unregister(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockPanelRepository)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, nil)

	registry := NewPanelRegistry(repo)
	registry.Register(&entities.Panel{ID: 5, GuildID: 10, Options: []string{"Sales"}})
	require.Equal(t, 1, registry.Len())

	registry.Unregister(5)
	assert.Zero(t, registry.Len())

	_, err := registry.Resolve(context.Background(), 10, 5, 0)
	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
