package entities

// GuildStats holds the ticket counters for a guild
type GuildStats struct {
	GuildID      int64 `db:"guild_id"`
	TotalTickets int64 `db:"total_tickets"` // Only ever increases
	OpenTickets  int64 // Derived from tickets with no closed_at
}
