package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGuildConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		roles     []int64
		wantRoles []int64
	}{
		{
			name:      "keeps roles in order",
			roles:     []int64{300, 100, 200},
			wantRoles: []int64{300, 100, 200},
		},
		{
			name:      "removes duplicates keeping first occurrence",
			roles:     []int64{100, 200, 100, 300, 200},
			wantRoles: []int64{100, 200, 300},
		},
		{
			name:      "drops zero ids",
			roles:     []int64{0, 100},
			wantRoles: []int64{100},
		},
		{
			name:      "empty input",
			roles:     nil,
			wantRoles: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewGuildConfig(1, 2, tt.roles)

			assert.Equal(t, int64(1), cfg.GuildID)
			assert.Equal(t, int64(2), cfg.CategoryID)
			assert.Equal(t, tt.wantRoles, cfg.StaffRoleIDs)
		})
	}
}
