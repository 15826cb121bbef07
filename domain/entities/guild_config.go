package entities

import "time"

// GuildConfig is the per-guild ticket configuration written by the configure command
type GuildConfig struct {
	GuildID      int64     `db:"guild_id"`
	CategoryID   int64     `db:"category_id"`    // Category new ticket channels are created under
	StaffRoleIDs []int64   `db:"staff_role_ids"` // Ordered set of roles that see every ticket
	UpdatedAt    time.Time `db:"updated_at"`
}

// NewGuildConfig builds a config with the staff roles de-duplicated, keeping first occurrence order
func NewGuildConfig(guildID, categoryID int64, staffRoleIDs []int64) *GuildConfig {
	return &GuildConfig{
		GuildID:      guildID,
		CategoryID:   categoryID,
		StaffRoleIDs: uniqueIDs(staffRoleIDs),
	}
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
