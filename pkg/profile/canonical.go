package profile

import (
	"strings"
)

// CanonicalAction represents a Minecraft control with its default key.
type CanonicalAction struct {
	Name    string
	Default string
}

// StandardActions lists the vanilla controls in options-screen order.
// Profiles may use option names ("key.attack") or these names.
var StandardActions = []CanonicalAction{
	// Movement
	{"forward", "KeyW"},
	{"left", "KeyA"},
	{"back", "KeyS"},
	{"right", "KeyD"},
	{"jump", "Space"},
	{"sneak", "ShiftLeft"},
	{"sprint", "ControlLeft"},

	// Gameplay
	{"attack", "MouseLeft"},
	{"use", "MouseRight"},
	{"pick block", "MouseMiddle"},

	// Inventory
	{"drop", "KeyQ"},
	{"inventory", "KeyE"},
	{"swap offhand", "KeyF"},
	{"hotbar 1", "Digit1"},
	{"hotbar 2", "Digit2"},
	{"hotbar 3", "Digit3"},
	{"hotbar 4", "Digit4"},
	{"hotbar 5", "Digit5"},
	{"hotbar 6", "Digit6"},
	{"hotbar 7", "Digit7"},
	{"hotbar 8", "Digit8"},
	{"hotbar 9", "Digit9"},

	// Multiplayer
	{"chat", "KeyT"},
	{"command", "Slash"},
	{"player list", "Tab"},

	// Miscellaneous
	{"screenshot", "F2"},
	{"toggle perspective", "F5"},
	{"fullscreen", "F11"},
}

// actionAliases maps option-file spellings that lose their word breaks.
var actionAliases = map[string]string{
	"pickitem":          "pick block",
	"pick item":         "pick block",
	"swapoffhand":       "swap offhand",
	"playerlist":        "player list",
	"toggleperspective": "toggle perspective",
	"toggle fullscreen": "fullscreen",
	"togglefullscreen":  "fullscreen",
	"drop item":         "drop",
}

// NormalizeAction standardizes action names so option-file keys
// ("key.hotbar.1", "key.swapOffhand") and plain names ("hotbar_1") compare equal.
func NormalizeAction(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "key_")
	n = strings.TrimPrefix(n, "key.")
	n = strings.ReplaceAll(n, "_", " ")
	n = strings.ReplaceAll(n, ".", " ")
	n = strings.Join(strings.Fields(n), " ")
	if alias, ok := actionAliases[n]; ok {
		return alias
	}
	return n
}

// LookupStandard returns the canonical action for a profile action name.
func LookupStandard(action string) (CanonicalAction, bool) {
	n := NormalizeAction(action)
	for _, c := range StandardActions {
		if c.Name == n {
			return c, true
		}
	}
	return CanonicalAction{}, false
}

// Deviation is a standard action bound to something other than its default.
type Deviation struct {
	Action  string `json:"action"`
	Default string `json:"default"`
	Code    string `json:"code"`
}

// Deviations lists the standard actions this profile rebinds, in
// StandardActions order. Unknown actions are ignored.
func (p *Profile) Deviations() []Deviation {
	bound := make(map[string]string, len(p.Keybindings))
	for action, code := range p.Keybindings {
		bound[NormalizeAction(action)] = code
	}

	var out []Deviation
	for _, c := range StandardActions {
		code, ok := bound[c.Name]
		if !ok || code == c.Default {
			continue
		}
		out = append(out, Deviation{Action: c.Name, Default: c.Default, Code: code})
	}
	return out
}
