package application

import (
	"strconv"
	"strings"
)

// Custom id prefixes of the buttons the bot renders. Ids never expire, so these are a stable format.
const (
	OpenTicketPrefix  = "ticket_open_"
	CloseTicketPrefix = "ticket_close_"
)

// ButtonEvent is a parsed component interaction. It is one of OpenTicketButton or CloseTicketButton.
type ButtonEvent interface {
	buttonEvent()
}

// OpenTicketButton is a click on a panel option
type OpenTicketButton struct {
	PanelID int64
	Index   int
}

// CloseTicketButton is a click on the close control inside a ticket channel
type CloseTicketButton struct {
	ChannelID int64
}

func (OpenTicketButton) buttonEvent()  {}
func (CloseTicketButton) buttonEvent() {}

// OpenTicketButtonID builds the custom id for a panel option button
func OpenTicketButtonID(panelID int64, index int) string {
	return OpenTicketPrefix + strconv.FormatInt(panelID, 10) + "_" + strconv.Itoa(index)
}

// CloseTicketButtonID builds the custom id for a ticket close button
func CloseTicketButtonID(channelID int64) string {
	return CloseTicketPrefix + strconv.FormatInt(channelID, 10)
}

// ParseButtonID parses a component custom id. ok is false for ids the ticket system does not own.
func ParseButtonID(customID string) (ButtonEvent, bool) {
	switch {
	case strings.HasPrefix(customID, OpenTicketPrefix):
		rest := strings.TrimPrefix(customID, OpenTicketPrefix)
		panelPart, indexPart, found := strings.Cut(rest, "_")
		if !found {
			return nil, false
		}
		panelID, err := strconv.ParseInt(panelPart, 10, 64)
		if err != nil || panelID <= 0 {
			return nil, false
		}
		index, err := strconv.Atoi(indexPart)
		if err != nil || index < 0 {
			return nil, false
		}
		return OpenTicketButton{PanelID: panelID, Index: index}, true

	case strings.HasPrefix(customID, CloseTicketPrefix):
		channelID, err := strconv.ParseInt(strings.TrimPrefix(customID, CloseTicketPrefix), 10, 64)
		if err != nil || channelID <= 0 {
			return nil, false
		}
		return CloseTicketButton{ChannelID: channelID}, true
	}

	return nil, false
}
