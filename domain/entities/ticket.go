package entities

import (
	"fmt"
	"strings"
	"time"
)

// TicketChannelPrefix marks a channel as a ticket channel
const TicketChannelPrefix = "ticket-"

const maxChannelNameLength = 100

// TicketState is the lifecycle state of a ticket channel
type TicketState string

const (
	TicketStateNone   TicketState = "none"
	TicketStateOpen   TicketState = "open"
	TicketStateClosed TicketState = "closed"
)

// Ticket records a ticket channel. Rows outlive their channel so history is kept after close.
type Ticket struct {
	ID        int64      `db:"id"`
	GuildID   int64      `db:"guild_id"`
	ChannelID int64      `db:"channel_id"`
	OpenerID  int64      `db:"opener_id"`
	PanelID   *int64     `db:"panel_id"` // Nullable - tickets may outlive panel bookkeeping
	Label     string     `db:"label"`
	OpenedAt  time.Time  `db:"opened_at"`
	ClosedAt  *time.Time `db:"closed_at"`
	ClosedBy  *int64     `db:"closed_by"`
}

// State returns the lifecycle state of the ticket
func (t *Ticket) State() TicketState {
	if t == nil {
		return TicketStateNone
	}
	if t.ClosedAt != nil {
		return TicketStateClosed
	}
	return TicketStateOpen
}

// IsOpen checks if the ticket has not been closed yet
func (t *Ticket) IsOpen() bool {
	return t.State() == TicketStateOpen
}

// TicketChannelName builds the channel name for a ticket opened by the given user.
// The suffix is the last four digits of the user id so two users sharing a display
// name get different channels; the same user always gets the same name.
func TicketChannelName(username string, userID int64) string {
	suffix := fmt.Sprintf("%04d", userID%10000)
	if userID < 0 {
		suffix = fmt.Sprintf("%04d", -(userID % 10000))
	}

	slug := slugify(username)
	maxSlug := maxChannelNameLength - len(TicketChannelPrefix) - len(suffix) - 1
	if len(slug) > maxSlug {
		slug = strings.TrimRight(slug[:maxSlug], "-")
	}

	return TicketChannelPrefix + slug + "-" + suffix
}

// IsTicketChannelName reports whether a channel name follows the ticket naming convention
func IsTicketChannelName(name string) bool {
	return strings.HasPrefix(name, TicketChannelPrefix) && len(name) > len(TicketChannelPrefix)
}

// slugify lowercases a name and keeps only characters Discord allows in text channel names
func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "user"
	}
	return slug
}
