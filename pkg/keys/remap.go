package keys

import (
	"sort"
	"strings"
)

// Sources returns the remap sources in sorted order.
func (r RemapTable) Sources() []string {
	out := make([]string, 0, len(r))
	for src := range r {
		out = append(out, src)
	}
	sort.Strings(out)
	return out
}

// Apply returns the key that code acts as under the remap table.
func (r RemapTable) Apply(code string) string {
	if target, ok := r[code]; ok {
		return target
	}
	return code
}

// BuildRemapDisplayMap inverts a remap table into display tokens: for every
// source -> target pair it records display(target) -> display(source).
// Sources are visited in sorted order, so when two entries render to the same
// target token the lexically last source is kept.
func BuildRemapDisplayMap(remap RemapTable) DisplayMap {
	out := make(DisplayMap, len(remap))
	for _, src := range remap.Sources() {
		out[ToDisplay(remap[src])] = ToDisplay(src)
	}
	return out
}

// ResolveSearchString returns the physical keys a player has to press to
// type searchStr. A string containing "+" is read as a combo ("Ctrl+Q"),
// anything else one character at a time.
func ResolveSearchString(searchStr string, displayMap DisplayMap) []string {
	units := SearchTokens(searchStr)
	out := make([]string, 0, len(units))
	for _, unit := range units {
		out = append(out, resolveToken(unit, displayMap))
	}
	return out
}

// ResolveKey returns the physical key a player presses to produce code.
func ResolveKey(code string, displayMap DisplayMap) string {
	return resolveToken(ToDisplay(code), displayMap)
}

func resolveToken(token string, displayMap DisplayMap) string {
	if pressed, ok := displayMap[token]; ok {
		token = pressed
	}
	return ToCode(token)
}

// BuildSearchString renders a key sequence as the string it produces under
// remap. Sequences containing a modifier are joined with "+"; plain ones are
// concatenated, which cannot always be split back apart when a token is
// longer than one character.
func BuildSearchString(seq []string, remap RemapTable) string {
	tokens := make([]string, len(seq))
	combo := false
	for i, code := range seq {
		tokens[i] = ToDisplay(remap.Apply(code))
		if IsModifierToken(tokens[i]) {
			combo = true
		}
	}
	if combo {
		return strings.Join(tokens, "+")
	}
	return strings.Join(tokens, "")
}

// SearchTokens splits a search string into the display tokens
// ResolveSearchString looks up, one per resulting key.
func SearchTokens(s string) []string {
	if strings.Contains(s, "+") {
		parts := strings.Split(s, "+")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	units := make([]string, 0, len(s))
	for _, r := range s {
		units = append(units, string(r))
	}
	return units
}
