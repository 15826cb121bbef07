package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseButtonID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		customID string
		want     ButtonEvent
		wantOK   bool
	}{
		{name: "open ticket", customID: "ticket_open_12_3", want: OpenTicketButton{PanelID: 12, Index: 3}, wantOK: true},
		{name: "close ticket", customID: "ticket_close_998877", want: CloseTicketButton{ChannelID: 998877}, wantOK: true},
		{name: "open without index", customID: "ticket_open_12", wantOK: false},
		{name: "open with negative index", customID: "ticket_open_12_-1", wantOK: false},
		{name: "open with bad panel id", customID: "ticket_open_abc_1", wantOK: false},
		{name: "close with bad channel", customID: "ticket_close_", wantOK: false},
		{name: "foreign id", customID: "poll_vote_1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseButtonID(tt.customID)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestButtonIDsRoundTrip(t *testing.T) {
	t.Parallel()

	open, ok := ParseButtonID(OpenTicketButtonID(41, 9))
	require.True(t, ok)
	assert.Equal(t, OpenTicketButton{PanelID: 41, Index: 9}, open)

	closeEvent, ok := ParseButtonID(CloseTicketButtonID(123456789012345678))
	require.True(t, ok)
	assert.Equal(t, CloseTicketButton{ChannelID: 123456789012345678}, closeEvent)

	assert.LessOrEqual(t, len(OpenTicketButtonID(9223372036854775807, 9)), 100)
}
