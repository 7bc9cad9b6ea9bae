package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/searchcraft"
	"github.com/google/uuid"
)

// SupportedFormats is the format_version constraint this build reads.
const SupportedFormats = "^1"

// ErrInvalidProfile wraps every validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

const (
	minNameLength  = 3
	maxNameLength  = 16
	maxSensitivity = 200
)

var supportedFormats = mustConstraint(SupportedFormats)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// Validate reports every problem found in the profile. Key codes outside the
// known vocabulary are accepted so older stored remaps keep loading.
func (p *Profile) Validate() error {
	var problems []error

	if p.FormatVersion != "" {
		v, err := semver.NewVersion(p.FormatVersion)
		switch {
		case err != nil:
			problems = append(problems, fmt.Errorf("format_version %q: %w", p.FormatVersion, err))
		case !supportedFormats.Check(v):
			problems = append(problems, fmt.Errorf("format_version %s is not supported (need %s)", v, SupportedFormats))
		}
	}

	if err := validatePlayerName(p.Player.Name); err != nil {
		problems = append(problems, err)
	}
	if p.Player.UUID != "" {
		if _, err := uuid.Parse(p.Player.UUID); err != nil {
			problems = append(problems, fmt.Errorf("player uuid %q: %w", p.Player.UUID, err))
		}
	}

	for _, action := range p.Actions() {
		if strings.TrimSpace(action) == "" {
			problems = append(problems, errors.New("keybinding with empty action name"))
			continue
		}
		if p.Keybindings[action] == "" {
			problems = append(problems, fmt.Errorf("keybinding %q has no key", action))
		}
	}

	for _, src := range p.Remaps.Sources() {
		if src == "" || p.Remaps[src] == "" {
			problems = append(problems, fmt.Errorf("remap %q -> %q has an empty side", src, p.Remaps[src]))
		}
	}

	for i, e := range p.SearchCraft {
		if err := searchcraft.ValidateSequence(e.Keys); err != nil {
			problems = append(problems, fmt.Errorf("search_craft[%d] %q: %w", i, e.Name, err))
		}
	}

	if p.Mouse.DPI < 0 {
		problems = append(problems, fmt.Errorf("mouse dpi %d is negative", p.Mouse.DPI))
	}
	if p.Mouse.Sensitivity < 0 || p.Mouse.Sensitivity > maxSensitivity {
		problems = append(problems, fmt.Errorf("mouse sensitivity %.1f outside 0-%d", p.Mouse.Sensitivity, maxSensitivity))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(problems...))
}

func validatePlayerName(name string) error {
	if name == "" {
		return errors.New("player name is required")
	}
	if len(name) < minNameLength || len(name) > maxNameLength {
		return fmt.Errorf("player name %q must be %d-%d characters", name, minNameLength, maxNameLength)
	}
	for _, r := range name {
		if !(r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return fmt.Errorf("player name %q contains %q", name, r)
		}
	}
	return nil
}
