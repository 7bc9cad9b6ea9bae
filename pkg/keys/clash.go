package keys

import (
	"sort"
)

// DetectConflicts finds remap entries that BuildRemapDisplayMap cannot invert
// without losing one of them. Self-remaps (KeyQ -> KeyQ) are harmless and
// still count as a source of their target.
func DetectConflicts(remap RemapTable) []Conflict {
	var conflicts []Conflict

	// Group sources by target code
	byTarget := make(map[string][]string)
	for _, src := range remap.Sources() {
		target := remap[src]
		byTarget[target] = append(byTarget[target], src)
	}

	for target, sources := range byTarget {
		if len(sources) > 1 {
			conflicts = append(conflicts, Conflict{
				Kind:    ConflictSharedTarget,
				Token:   ToDisplay(target),
				Sources: sources,
				Targets: []string{target},
			})
		}
	}

	// Distinct target codes that render to the same token
	byToken := make(map[string][]string)
	for target := range byTarget {
		token := ToDisplay(target)
		byToken[token] = append(byToken[token], target)
	}

	for token, targets := range byToken {
		if len(targets) <= 1 {
			continue
		}
		sort.Strings(targets)
		var sources []string
		for _, t := range targets {
			sources = append(sources, byTarget[t]...)
		}
		sort.Strings(sources)
		conflicts = append(conflicts, Conflict{
			Kind:    ConflictDisplayCollision,
			Token:   token,
			Sources: sources,
			Targets: targets,
		})
	}

	// Sort conflicts by kind then token for consistent output
	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].Kind != conflicts[j].Kind {
			return conflicts[i].Kind < conflicts[j].Kind
		}
		return conflicts[i].Token < conflicts[j].Token
	})

	return conflicts
}

// GroupConflictsByKind returns conflicts organized by kind.
func GroupConflictsByKind(conflicts []Conflict) map[ConflictKind][]Conflict {
	result := make(map[ConflictKind][]Conflict)
	for _, c := range conflicts {
		result[c.Kind] = append(result[c.Kind], c)
	}
	return result
}

// CountConflicts returns the number of conflicts of the given kind.
func CountConflicts(conflicts []Conflict, kind ConflictKind) int {
	count := 0
	for _, c := range conflicts {
		if c.Kind == kind {
			count++
		}
	}
	return count
}
