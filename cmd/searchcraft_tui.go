package cmd

import (
	"fmt"
	"strings"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/searchcraft"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type searchCraftKeyMap struct {
	Accept key.Binding
	Quit   key.Binding
}

func (k searchCraftKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Quit}
}

func (k searchCraftKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var searchCraftKeys = searchCraftKeyMap{
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "print codes"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// searchCraftModel encodes the input on every keystroke.
type searchCraftModel struct {
	input      textinput.Model
	help       help.Model
	keys       searchCraftKeyMap
	theme      theme
	displayMap keys.DisplayMap

	codes []string
	press []string
	err   error

	accepted bool
	quitting bool
}

func newSearchCraftModel(remap keys.RemapTable, t theme) searchCraftModel {
	ti := textinput.New()
	ti.Placeholder = "boat"
	ti.Prompt = "search> "
	ti.CharLimit = searchcraft.MaxLength
	ti.Width = searchcraft.MaxLength + 1
	ti.Focus()

	return searchCraftModel{
		input:      ti,
		help:       help.New(),
		keys:       searchCraftKeys,
		theme:      t,
		displayMap: keys.BuildRemapDisplayMap(remap),
	}
}

func (m searchCraftModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m searchCraftModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.accepted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.encode()
	return m, cmd
}

func (m *searchCraftModel) encode() {
	m.codes, m.err = searchcraft.Encode(m.input.Value())
	m.press = nil
	if m.err != nil {
		return
	}
	for _, code := range m.codes {
		m.press = append(m.press, keys.ResolveKey(code, m.displayMap))
	}
}

func (m searchCraftModel) View() string {
	if m.quitting || m.accepted {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString(t.Header.Render("Search-craft"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.Error.Render(iconError + " " + m.err.Error()))
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "%s %s\n", t.Muted.Render("codes: "), strings.Join(m.codes, " "))
		fmt.Fprintf(&b, "%s %s\n", t.Muted.Render("press: "), renderKeys(t, m.press))
		fmt.Fprintf(&b, "%s %s\n", t.Muted.Render("search:"), t.Highlight.Render(keys.BuildSearchString(m.press, nil)))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func renderKeys(t theme, codes []string) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = t.Key.Render(keys.ToDisplay(code))
	}
	return strings.Join(parts, " ")
}
