// Package profile models a player's shared key configuration: in-game
// keybindings, external key remaps, mouse settings and search-craft
// sequences. Profiles are read from TOML, YAML or JSON files.
package profile

import (
	"sort"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/searchcraft"
)

// CurrentFormatVersion is written by new profiles and accepted by Validate.
const CurrentFormatVersion = "1.0.0"

// Profile is one player's configuration.
type Profile struct {
	FormatVersion string             `json:"format_version,omitempty" yaml:"format_version,omitempty" toml:"format_version,omitempty" jsonschema:"description=Profile format version (semver). Defaults to 1.0.0."`
	Player        Player             `json:"player" yaml:"player" toml:"player"`
	Keybindings   map[string]string  `json:"keybindings,omitempty" yaml:"keybindings,omitempty" toml:"keybindings,omitempty" jsonschema:"description=In-game action to physical key code (e.g. attack = MouseLeft)."`
	Remaps        keys.RemapTable    `json:"remaps,omitempty" yaml:"remaps,omitempty" toml:"remaps,omitempty" jsonschema:"description=External remaps: pressed key to the key it acts as."`
	SearchCraft   []SearchCraftEntry `json:"search_craft,omitempty" yaml:"search_craft,omitempty" toml:"search_craft,omitempty"`
	Mouse         Mouse              `json:"mouse,omitempty" yaml:"mouse,omitempty" toml:"mouse,omitempty"`
	Notes         string             `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`

	// Source is the file the profile was loaded from.
	Source string `json:"-" yaml:"-" toml:"-"`
}

// Player identifies the Minecraft account that owns the profile.
type Player struct {
	Name string `json:"name" yaml:"name" toml:"name" jsonschema:"description=Minecraft username"`
	UUID string `json:"uuid,omitempty" yaml:"uuid,omitempty" toml:"uuid,omitempty" jsonschema:"description=Minecraft account UUID, with or without dashes"`
}

// Mouse holds pointer settings.
type Mouse struct {
	DPI         int     `json:"dpi,omitempty" yaml:"dpi,omitempty" toml:"dpi,omitempty"`
	Sensitivity float64 `json:"sensitivity,omitempty" yaml:"sensitivity,omitempty" toml:"sensitivity,omitempty" jsonschema:"description=In-game sensitivity percentage (0-200)"`
}

// SearchCraftEntry is a named sequence of up to four keys typed into the
// recipe book search box. Keys are the codes that reach the game.
type SearchCraftEntry struct {
	Name string   `json:"name" yaml:"name" toml:"name"`
	Keys []string `json:"keys" yaml:"keys" toml:"keys" jsonschema:"maxItems=4"`
}

// Binding is a keybinding resolved against the profile's remaps.
type Binding struct {
	Action  string `json:"action"`
	Code    string `json:"code"`
	Display string `json:"display"`

	// Pressed is the physical key that produces Code. Empty when Code is
	// remapped away and nothing is remapped onto it.
	Pressed        string `json:"pressed,omitempty"`
	PressedDisplay string `json:"pressed_display,omitempty"`
	Reachable      bool   `json:"reachable"`
}

// SearchString is a search-craft entry rendered for display.
type SearchString struct {
	Name  string   `json:"name"`
	Input string   `json:"input"`
	Keys  []string `json:"keys"`
	Press []string `json:"press"`

	// Text is the pressed keys as a search string ("LCtrl+Q", "AB").
	Text string `json:"text"`
}

// New returns an empty profile for the given player.
func New(name string) *Profile {
	return &Profile{
		FormatVersion: CurrentFormatVersion,
		Player:        Player{Name: name},
		Keybindings:   make(map[string]string),
		Remaps:        make(keys.RemapTable),
	}
}

// Actions returns the bound actions in sorted order.
func (p *Profile) Actions() []string {
	out := make([]string, 0, len(p.Keybindings))
	for a := range p.Keybindings {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// Bindings resolves every keybinding to the key the player physically presses.
func (p *Profile) Bindings() []Binding {
	inverse := make(map[string]string, len(p.Remaps))
	for _, src := range p.Remaps.Sources() {
		inverse[p.Remaps[src]] = src
	}

	out := make([]Binding, 0, len(p.Keybindings))
	for _, action := range p.Actions() {
		code := p.Keybindings[action]
		b := Binding{
			Action:  action,
			Code:    code,
			Display: keys.FormatKeyName(code),
		}
		if src, ok := inverse[code]; ok {
			b.Pressed = src
		} else if _, remapped := p.Remaps[code]; !remapped {
			b.Pressed = code
		}
		if b.Pressed != "" {
			b.Reachable = true
			b.PressedDisplay = keys.FormatKeyName(b.Pressed)
		}
		out = append(out, b)
	}
	return out
}

// SearchStrings renders each search-craft entry with the keys to press.
func (p *Profile) SearchStrings() []SearchString {
	dm := keys.BuildRemapDisplayMap(p.Remaps)
	out := make([]SearchString, 0, len(p.SearchCraft))
	for _, e := range p.SearchCraft {
		press := make([]string, 0, len(e.Keys))
		for _, code := range e.Keys {
			if code == "" {
				continue
			}
			press = append(press, keys.ResolveKey(code, dm))
		}
		out = append(out, SearchString{
			Name:  e.Name,
			Input: searchcraft.Decode(e.Keys),
			Keys:  e.Keys,
			Press: press,
			Text:  keys.BuildSearchString(press, nil),
		})
	}
	return out
}

// AddSearchCraft encodes input and appends it as a named entry.
func (p *Profile) AddSearchCraft(name, input string) error {
	codes, err := searchcraft.Encode(input)
	if err != nil {
		return err
	}
	p.SearchCraft = append(p.SearchCraft, SearchCraftEntry{Name: name, Keys: codes})
	return nil
}
