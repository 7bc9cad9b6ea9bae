package stats

import (
	"sort"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/profile"
)

// RemapCount is how many players use a given remap.
type RemapCount struct {
	Source        string `json:"source"`
	Target        string `json:"target"`
	SourceDisplay string `json:"source_display"`
	TargetDisplay string `json:"target_display"`
	Count         int    `json:"count"`
}

// Summary holds headline numbers for a set of profiles.
type Summary struct {
	Profiles           int     `json:"profiles"`
	WithRemaps         int     `json:"with_remaps"`
	WithSearchCraft    int     `json:"with_search_craft"`
	AverageDPI         float64 `json:"average_dpi"`
	AverageSensitivity float64 `json:"average_sensitivity"`
}

// Report bundles every statistics view.
type Report struct {
	Summary Summary      `json:"summary"`
	Matrix  Matrix       `json:"matrix"`
	Keys    []KeyCount   `json:"keys"`
	Remaps  []RemapCount `json:"remaps"`
}

// Build computes all views for profiles.
func Build(profiles []*profile.Profile) Report {
	return Report{
		Summary: Summarize(profiles),
		Matrix:  BuildMatrix(profiles),
		Keys:    KeyUsage(profiles),
		Remaps:  RemapUsage(profiles),
	}
}

// KeyUsage counts the physical keys players press for their bindings,
// after remaps. Unreachable bindings are not counted.
func KeyUsage(profiles []*profile.Profile) []KeyCount {
	counts := make(map[string]int)
	for _, p := range profiles {
		for _, b := range p.Bindings() {
			if !b.Reachable {
				continue
			}
			counts[b.Pressed]++
		}
	}
	return sortedCounts(counts)
}

// RemapUsage counts identical source -> target remaps across profiles.
func RemapUsage(profiles []*profile.Profile) []RemapCount {
	type pair struct{ src, dst string }
	counts := make(map[pair]int)
	for _, p := range profiles {
		for src, dst := range p.Remaps {
			counts[pair{src, dst}]++
		}
	}

	out := make([]RemapCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, RemapCount{
			Source:        k.src,
			Target:        k.dst,
			SourceDisplay: keys.ToDisplay(k.src),
			TargetDisplay: keys.ToDisplay(k.dst),
			Count:         n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// Summarize computes headline numbers. Averages only include profiles that
// set the value.
func Summarize(profiles []*profile.Profile) Summary {
	s := Summary{Profiles: len(profiles)}

	var dpiSum, sensSum float64
	var dpiN, sensN int
	for _, p := range profiles {
		if len(p.Remaps) > 0 {
			s.WithRemaps++
		}
		if len(p.SearchCraft) > 0 {
			s.WithSearchCraft++
		}
		if p.Mouse.DPI > 0 {
			dpiSum += float64(p.Mouse.DPI)
			dpiN++
		}
		if p.Mouse.Sensitivity > 0 {
			sensSum += p.Mouse.Sensitivity
			sensN++
		}
	}
	if dpiN > 0 {
		s.AverageDPI = dpiSum / float64(dpiN)
	}
	if sensN > 0 {
		s.AverageSensitivity = sensSum / float64(sensN)
	}
	return s
}
