// Package stats aggregates key usage across many player profiles.
package stats

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/profile"
)

// KeyCount is how many times a key appears.
type KeyCount struct {
	Key     string `json:"key"`
	Display string `json:"display"`
	Count   int    `json:"count"`
}

// MatrixRow represents a single action and the key each player binds it to.
type MatrixRow struct {
	Action     string            `json:"action"`
	Default    string            `json:"default,omitempty"`
	Players    map[string]string `json:"players"`
	Counts     []KeyCount        `json:"counts"`
	MostCommon string            `json:"most_common"`
	Consistent bool              `json:"consistent"`
}

// Matrix contains the full action-by-player view.
type Matrix struct {
	Rows    []MatrixRow `json:"rows"`
	Players []string    `json:"players"`
}

// PlayerName returns the label used for a profile in reports.
func PlayerName(p *profile.Profile) string {
	if p.Player.Name != "" {
		return p.Player.Name
	}
	base := filepath.Base(p.Source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// BuildMatrix creates a matrix view showing what key each player uses for
// each action. Action names are normalized so option-file and plain
// spellings land in the same row.
func BuildMatrix(profiles []*profile.Profile) Matrix {
	rowMap := make(map[string]*MatrixRow)
	codeCounts := make(map[string]map[string]int) // action -> code -> count
	playerSet := make(map[string]bool)

	for _, p := range profiles {
		name := PlayerName(p)
		playerSet[name] = true

		for action, code := range p.Keybindings {
			norm := profile.NormalizeAction(action)
			if rowMap[norm] == nil {
				rowMap[norm] = &MatrixRow{
					Action:  norm,
					Players: make(map[string]string),
				}
				if c, ok := profile.LookupStandard(norm); ok {
					rowMap[norm].Default = c.Default
				}
				codeCounts[norm] = make(map[string]int)
			}
			rowMap[norm].Players[name] = code
			codeCounts[norm][code]++
		}
	}

	report := Matrix{}
	for name := range playerSet {
		report.Players = append(report.Players, name)
	}
	sort.Strings(report.Players)

	for action, row := range rowMap {
		row.Counts = sortedCounts(codeCounts[action])
		if len(row.Counts) > 0 {
			row.MostCommon = row.Counts[0].Key
		}
		row.Consistent = len(row.Counts) <= 1
		report.Rows = append(report.Rows, *row)
	}

	// Standard actions first in options-screen order, then the rest alphabetically
	order := make(map[string]int, len(profile.StandardActions))
	for i, c := range profile.StandardActions {
		order[c.Name] = i
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		oi, iStd := order[report.Rows[i].Action]
		oj, jStd := order[report.Rows[j].Action]
		if iStd != jStd {
			return iStd
		}
		if iStd {
			return oi < oj
		}
		return report.Rows[i].Action < report.Rows[j].Action
	})

	return report
}

func sortedCounts(counts map[string]int) []KeyCount {
	out := make([]KeyCount, 0, len(counts))
	for code, n := range counts {
		out = append(out, KeyCount{Key: code, Display: keys.FormatKeyName(code), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
