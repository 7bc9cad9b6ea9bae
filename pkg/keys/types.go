// Package keys translates physical key codes (browser KeyboardEvent.code
// names plus Mouse<N> pointer buttons) to the short labels players see, and
// back. It also resolves search strings against a player's remap table.
//
// All tables are package-level values initialised once and never written
// afterwards, so every function here is safe for concurrent use.
package keys

// Family groups physical key codes by how they are translated.
type Family string

const (
	FamilyModifier Family = "modifier"
	FamilyLetter   Family = "letter"
	FamilyDigit    Family = "digit"
	FamilyFunction Family = "function"
	FamilyMouse    Family = "mouse"
	FamilySpecial  Family = "special"
	FamilyChar     Family = "char"
	FamilyUnknown  Family = "unknown"
)

// String returns the string representation of the family.
func (f Family) String() string {
	return string(f)
}

// AllFamilies returns the known families in display order.
func AllFamilies() []Family {
	return []Family{
		FamilyModifier,
		FamilyLetter,
		FamilyDigit,
		FamilyFunction,
		FamilyMouse,
		FamilySpecial,
		FamilyChar,
	}
}

// KeyInfo describes one entry of the fixed vocabulary.
type KeyInfo struct {
	Code    string `json:"code"`
	Display string `json:"display"`
	Family  Family `json:"family"`
}

// RemapTable maps a source physical key to the key it acts as.
// "KeyQ" -> "KeyW" means pressing Q produces W.
type RemapTable map[string]string

// DisplayMap maps the display token of a remapped (target) key to the
// display token of the key that has to be pressed to produce it.
type DisplayMap map[string]string

// ConflictKind classifies a remap conflict.
type ConflictKind string

const (
	// ConflictSharedTarget: several sources remap to the same target key.
	ConflictSharedTarget ConflictKind = "shared_target"
	// ConflictDisplayCollision: distinct targets render to the same token.
	ConflictDisplayCollision ConflictKind = "display_collision"
)

// Conflict represents a remap entry set that cannot be inverted cleanly.
// BuildRemapDisplayMap keeps only one source for Token.
type Conflict struct {
	Kind    ConflictKind `json:"kind"`
	Token   string       `json:"token"`
	Sources []string     `json:"sources"`
	Targets []string     `json:"targets"`
}
