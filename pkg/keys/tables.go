package keys

import "strconv"

// Display labels for the four mouse buttons that have Japanese names on the site.
const (
	MouseLeftLabel   = "左クリック"
	MouseRightLabel  = "右クリック"
	MouseMiddleLabel = "ホイール"
)

// modifierOrder fixes the listing order of modifierDisplay.
var modifierOrder = []string{
	"ControlLeft", "ControlRight",
	"ShiftLeft", "ShiftRight",
	"AltLeft", "AltRight",
	"MetaLeft", "MetaRight",
}

var modifierDisplay = map[string]string{
	"ControlLeft":  "LCtrl",
	"ControlRight": "RCtrl",
	"ShiftLeft":    "LShift",
	"ShiftRight":   "RShift",
	"AltLeft":      "LAlt",
	"AltRight":     "RAlt",
	"MetaLeft":     "LWin",
	"MetaRight":    "RWin",
}

var mouseOrder = []string{"MouseLeft", "MouseRight", "MouseMiddle", "Mouse4", "Mouse5"}

var mouseDisplay = map[string]string{
	"MouseLeft":   MouseLeftLabel,
	"MouseRight":  MouseRightLabel,
	"MouseMiddle": MouseMiddleLabel,
	"Mouse4":      "MB4",
	"Mouse5":      "MB5",
}

var specialOrder = []string{
	"Space", "Enter", "Tab", "Backspace", "Escape", "CapsLock",
	"Insert", "Delete", "Home", "End", "PageUp", "PageDown",
	"ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight",
	"Minus", "Equal", "BracketLeft", "BracketRight", "Backslash",
	"Semicolon", "Quote", "Comma", "Period", "Slash", "Backquote",
}

var specialDisplay = map[string]string{
	"Space":     "Space",
	"Enter":     "Enter",
	"Tab":       "Tab",
	"Backspace": "Backspace",
	"Escape":    "Esc",
	"CapsLock":  "Caps",
	"Insert":    "Ins",
	"Delete":    "Del",
	"Home":      "Home",
	"End":       "End",
	"PageUp":    "PgUp",
	"PageDown":  "PgDn",

	"ArrowUp":    "↑",
	"ArrowDown":  "↓",
	"ArrowLeft":  "←",
	"ArrowRight": "→",

	"Minus":        "-",
	"Equal":        "=",
	"BracketLeft":  "[",
	"BracketRight": "]",
	"Backslash":    "\\",
	"Semicolon":    ";",
	"Quote":        "'",
	"Comma":        ",",
	"Period":       ".",
	"Slash":        "/",
	"Backquote":    "`",
}

var (
	modifierCodes = invert(modifierDisplay)
	mouseCodes    = invert(mouseDisplay)
	specialCodes  = invert(specialDisplay)
)

// maxFunctionKey is the highest F-key listed by Vocabulary.
const maxFunctionKey = 24

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Vocabulary returns every code of the closed vocabulary with its display
// token, grouped by family. Codes outside this list still translate through
// the identity fallback.
func Vocabulary() []KeyInfo {
	var out []KeyInfo
	for _, code := range modifierOrder {
		out = append(out, KeyInfo{Code: code, Display: modifierDisplay[code], Family: FamilyModifier})
	}
	for c := 'A'; c <= 'Z'; c++ {
		out = append(out, KeyInfo{Code: "Key" + string(c), Display: string(c), Family: FamilyLetter})
	}
	for d := '0'; d <= '9'; d++ {
		out = append(out, KeyInfo{Code: "Digit" + string(d), Display: string(d), Family: FamilyDigit})
	}
	for n := 1; n <= maxFunctionKey; n++ {
		code := "F" + strconv.Itoa(n)
		out = append(out, KeyInfo{Code: code, Display: code, Family: FamilyFunction})
	}
	for _, code := range mouseOrder {
		out = append(out, KeyInfo{Code: code, Display: mouseDisplay[code], Family: FamilyMouse})
	}
	for _, code := range specialOrder {
		out = append(out, KeyInfo{Code: code, Display: specialDisplay[code], Family: FamilySpecial})
	}
	return out
}

// VocabularyByFamily filters Vocabulary to a single family.
func VocabularyByFamily(f Family) []KeyInfo {
	var out []KeyInfo
	for _, k := range Vocabulary() {
		if k.Family == f {
			out = append(out, k)
		}
	}
	return out
}
