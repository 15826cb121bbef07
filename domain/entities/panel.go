package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinPanelOptions     = 1
	MaxPanelOptions     = 10
	MaxOptionLabelRunes = 80  // Discord button label limit
	MaxPanelNameRunes   = 256 // Discord embed title limit
)

// Panel is a persisted ticket panel definition. The definition is immutable once created;
// only the location of the rendered message is recorded afterwards.
type Panel struct {
	ID        int64     `db:"panel_id"`
	GuildID   int64     `db:"guild_id"`
	Name      string    `db:"name"`
	Options   []string  `db:"option_labels"`
	ChannelID *int64    `db:"channel_id"` // Nullable until the panel message is posted
	MessageID *int64    `db:"message_id"` // Nullable until the panel message is posted
	CreatedAt time.Time `db:"created_at"`
}

// ParsePanelOptions splits a comma separated option list, trimming each entry and dropping empties
func ParsePanelOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		if label := strings.TrimSpace(part); label != "" {
			options = append(options, label)
		}
	}
	return options
}

// ValidOptionCount reports whether n is an allowed number of panel options
func ValidOptionCount(n int) bool {
	return n >= MinPanelOptions && n <= MaxPanelOptions
}

// LabelTooLong reports whether a button label exceeds the platform limit
func LabelTooLong(label string) bool {
	return utf8.RuneCountInString(label) > MaxOptionLabelRunes
}

// Option returns the label bound to the given button index
func (p *Panel) Option(index int) (string, bool) {
	if index < 0 || index >= len(p.Options) {
		return "", false
	}
	return p.Options[index], true
}

// HasMessage checks if the panel message location is known
func (p *Panel) HasMessage() bool {
	return p.ChannelID != nil && p.MessageID != nil
}
