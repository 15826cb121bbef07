package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePanelOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "two options", raw: "Billing, Tech", want: []string{"Billing", "Tech"}},
		{name: "drops empty entries", raw: "Billing,, ,Tech,", want: []string{"Billing", "Tech"}},
		{name: "only separators", raw: " , , ", want: []string{}},
		{name: "empty string", raw: "", want: []string{}},
		{name: "keeps inner spaces", raw: "General Support ,Bug Report", want: []string{"General Support", "Bug Report"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParsePanelOptions(tt.raw))
		})
	}
}

func TestValidOptionCount(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidOptionCount(0))
	assert.True(t, ValidOptionCount(1))
	assert.True(t, ValidOptionCount(10))
	assert.False(t, ValidOptionCount(11))
}

func TestLabelTooLong(t *testing.T) {
	t.Parallel()

	assert.False(t, LabelTooLong(strings.Repeat("a", MaxOptionLabelRunes)))
	assert.True(t, LabelTooLong(strings.Repeat("a", MaxOptionLabelRunes+1)))
	// Multi-byte runes count once
	assert.False(t, LabelTooLong(strings.Repeat("é", MaxOptionLabelRunes)))
}

func TestPanel_Option(t *testing.T) {
	t.Parallel()

	panel := &Panel{ID: 7, Options: []string{"Billing", "Tech"}}

	label, ok := panel.Option(1)
	assert.True(t, ok)
	assert.Equal(t, "Tech", label)

	_, ok = panel.Option(2)
	assert.False(t, ok)

	_, ok = panel.Option(-1)
	assert.False(t, ok)
}

func TestPanel_HasMessage(t *testing.T) {
	t.Parallel()

	channelID, messageID := int64(1), int64(2)

	assert.False(t, (&Panel{}).HasMessage())
	assert.False(t, (&Panel{ChannelID: &channelID}).HasMessage())
	assert.True(t, (&Panel{ChannelID: &channelID, MessageID: &messageID}).HasMessage())
}
