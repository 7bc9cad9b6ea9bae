package cmd

import (
	"testing"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/searchcraft"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(t *testing.T, m searchCraftModel, s string) searchCraftModel {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = next.(searchCraftModel)
		require.True(t, ok)
	}
	return m
}

func TestSearchCraftModelEncodesAsYouType(t *testing.T) {
	m := newSearchCraftModel(keys.RemapTable{"KeyZ": "KeyB"}, newTheme(false))
	m = typeRunes(t, m, "bo")

	assert.Equal(t, "bo", m.input.Value())
	assert.Equal(t, []string{"KeyB", "KeyO"}, m.codes)
	assert.Equal(t, []string{"KeyZ", "KeyO"}, m.press)
	assert.NoError(t, m.err)

	view := m.View()
	assert.Contains(t, view, "KeyB KeyO")
	assert.Contains(t, view, "ZO")
}

func TestSearchCraftModelCharLimit(t *testing.T) {
	m := newSearchCraftModel(nil, newTheme(false))
	m = typeRunes(t, m, "boats")

	assert.Equal(t, "boat", m.input.Value())
	assert.Len(t, m.codes, searchcraft.MaxLength)
}

func TestSearchCraftModelIllegalCharacter(t *testing.T) {
	m := newSearchCraftModel(nil, newTheme(false))
	m = typeRunes(t, m, "a b")

	assert.ErrorIs(t, m.err, searchcraft.ErrIllegalCharacter)
	assert.Nil(t, m.press)
	assert.Contains(t, m.View(), iconError)
}

func TestSearchCraftModelKeys(t *testing.T) {
	m := newSearchCraftModel(nil, newTheme(false))
	m = typeRunes(t, m, "ab")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	accepted := next.(searchCraftModel)
	assert.True(t, accepted.accepted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, accepted.View())

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	quit := next.(searchCraftModel)
	assert.True(t, quit.quitting)
	assert.False(t, quit.accepted)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
