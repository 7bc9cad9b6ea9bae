package keys

import "strings"

const (
	letterPrefix = "Key"
	digitPrefix  = "Digit"
	charPrefix   = "Char_"
	mousePrefix  = "Mouse"
)

// modifierMarkers are the substrings that put a search string into the
// "+"-joined combo form.
var modifierMarkers = []string{"Ctrl", "Shift", "Alt", "Win"}

// ToDisplay returns the display token for a physical key code.
// Unknown codes are returned unchanged so future key names keep rendering.
func ToDisplay(code string) string {
	if d, ok := modifierDisplay[code]; ok {
		return d
	}
	if strings.HasPrefix(code, letterPrefix) {
		return code[len(letterPrefix):]
	}
	if strings.HasPrefix(code, digitPrefix) {
		return code[len(digitPrefix):]
	}
	if isFunctionKey(code) {
		return code
	}
	if d, ok := mouseDisplay[code]; ok {
		return d
	}
	if d, ok := specialDisplay[code]; ok {
		return d
	}
	return code
}

// ToCode is the inverse of ToDisplay. It is only exact for tokens that
// ToDisplay produced; anything else is returned unchanged.
func ToCode(token string) string {
	if c, ok := modifierCodes[token]; ok {
		return c
	}
	if len(token) == 1 {
		switch ch := token[0]; {
		case ch >= 'A' && ch <= 'Z':
			return letterPrefix + token
		case ch >= '0' && ch <= '9':
			return digitPrefix + token
		}
	}
	if isFunctionKey(token) {
		return token
	}
	if c, ok := mouseCodes[token]; ok {
		return c
	}
	if c, ok := specialCodes[token]; ok {
		return c
	}
	return token
}

// Classify reports which family a code belongs to.
func Classify(code string) Family {
	switch {
	case modifierDisplay[code] != "":
		return FamilyModifier
	case len(code) == len(letterPrefix)+1 && strings.HasPrefix(code, letterPrefix) && isASCIILetter(code[len(letterPrefix)]):
		return FamilyLetter
	case len(code) == len(digitPrefix)+1 && strings.HasPrefix(code, digitPrefix) && isASCIIDigit(code[len(digitPrefix)]):
		return FamilyDigit
	case isFunctionKey(code):
		return FamilyFunction
	case mouseDisplay[code] != "" || (strings.HasPrefix(code, mousePrefix) && allDigits(code[len(mousePrefix):])):
		return FamilyMouse
	case specialDisplay[code] != "":
		return FamilySpecial
	case len(code) > len(charPrefix) && strings.HasPrefix(code, charPrefix):
		return FamilyChar
	default:
		return FamilyUnknown
	}
}

// FormatKeyName renders a stored key name for display. It accepts single
// codes as well as "+"-joined combos such as "ControlLeft+KeyQ".
func FormatKeyName(name string) string {
	if name == "" {
		return ""
	}
	if name == "+" || !strings.Contains(name, "+") {
		return ToDisplay(name)
	}
	parts := strings.Split(name, "+")
	for i, p := range parts {
		parts[i] = ToDisplay(strings.TrimSpace(p))
	}
	return strings.Join(parts, "+")
}

// IsModifierToken reports whether a display token names a modifier.
func IsModifierToken(token string) bool {
	for _, m := range modifierMarkers {
		if strings.Contains(token, m) {
			return true
		}
	}
	return false
}

func isFunctionKey(s string) bool {
	return len(s) >= 2 && s[0] == 'F' && allDigits(s[1:])
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return false
		}
	}
	return true
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
