package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAction(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"attack", "attack"},
		{"key.attack", "attack"},
		{"key.hotbar.1", "hotbar 1"},
		{"key_hotbar_9", "hotbar 9"},
		{"key.swapOffhand", "swap offhand"},
		{"key.pickItem", "pick block"},
		{"key.playerlist", "player list"},
		{"key.togglePerspective", "toggle perspective"},
		{"  Player_List ", "player list"},
		{"custom macro", "custom macro"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAction(tt.input))
		})
	}
}

func TestLookupStandard(t *testing.T) {
	c, ok := LookupStandard("key.sprint")
	require.True(t, ok)
	assert.Equal(t, "ControlLeft", c.Default)

	_, ok = LookupStandard("reset")
	assert.False(t, ok)
}

func TestDeviations(t *testing.T) {
	p := New("Steve")
	p.Keybindings = map[string]string{
		"key.attack":      "MouseLeft",
		"key.swapOffhand": "Mouse4",
		"key.drop":        "KeyG",
		"reset":           "KeyR",
	}

	got := p.Deviations()
	assert.Equal(t, []Deviation{
		{Action: "drop", Default: "KeyQ", Code: "KeyG"},
		{Action: "swap offhand", Default: "KeyF", Code: "Mouse4"},
	}, got)
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Minecraft Keybinding Profile", doc["title"])

	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, field := range []string{"format_version", "player", "keybindings", "remaps", "search_craft", "mouse"} {
		assert.Contains(t, props, field)
	}
	assert.NotContains(t, props, "Source")
}
