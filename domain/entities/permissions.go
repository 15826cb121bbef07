package entities

// Permission bits used on ticket channels. Values match the Discord permission flags.
const (
	PermissionViewChannel  int64 = 1 << 10
	PermissionSendMessages int64 = 1 << 11
)

// OverwriteTarget identifies what a permission overwrite applies to
type OverwriteTarget int

const (
	OverwriteTargetRole OverwriteTarget = iota
	OverwriteTargetMember
)

// PermissionOverwrite grants or denies permissions on a channel for a role or member
type PermissionOverwrite struct {
	TargetID   int64
	TargetType OverwriteTarget
	Allow      int64
	Deny       int64
}

// CanView reports whether the overwrite grants visibility
func (o PermissionOverwrite) CanView() bool {
	return o.Allow&PermissionViewChannel != 0
}

// CanPost reports whether the overwrite allows sending messages
func (o PermissionOverwrite) CanPost() bool {
	return o.Allow&PermissionSendMessages != 0
}

// TicketOverwrites builds the permission overlay for a ticket channel: the guild default
// role (whose id equals the guild id) loses visibility, the requester and every staff role
// can view and post.
func TicketOverwrites(guildID, requesterID int64, staffRoleIDs []int64) []PermissionOverwrite {
	memberAccess := PermissionViewChannel | PermissionSendMessages

	overwrites := make([]PermissionOverwrite, 0, len(staffRoleIDs)+2)
	overwrites = append(overwrites,
		PermissionOverwrite{
			TargetID:   guildID,
			TargetType: OverwriteTargetRole,
			Deny:       PermissionViewChannel,
		},
		PermissionOverwrite{
			TargetID:   requesterID,
			TargetType: OverwriteTargetMember,
			Allow:      memberAccess,
		},
	)

	for _, roleID := range uniqueIDs(staffRoleIDs) {
		if roleID == guildID {
			continue
		}
		overwrites = append(overwrites, PermissionOverwrite{
			TargetID:   roleID,
			TargetType: OverwriteTargetRole,
			Allow:      memberAccess,
		})
	}

	return overwrites
}
