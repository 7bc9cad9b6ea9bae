package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/logger"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/profile"
	"github.com/spf13/cobra"
)

// remapSource is the --profile / --remap flag pair shared by commands that
// look through a remap table.
type remapSource struct {
	opts    *rootOptions
	profile string
	remaps  *remapFlag
}

func addRemapFlags(cmd *cobra.Command, opts *rootOptions) *remapSource {
	src := &remapSource{opts: opts, remaps: newRemapFlag()}
	cmd.Flags().StringVarP(&src.profile, "profile", "p", "", "Profile file or name whose remaps to apply (default from config)")
	cmd.Flags().Var(src.remaps, "remap", "Extra remap SRC=DST, repeatable (overrides the profile)")
	return src
}

// Table merges the profile's remaps with the --remap overrides.
func (s *remapSource) Table() (keys.RemapTable, error) {
	table := make(keys.RemapTable)

	ref := s.profile
	if ref == "" {
		ref = s.opts.cfg.DefaultProfile
	}
	if ref != "" {
		p, err := loadProfileRef(s.opts, ref)
		if err != nil {
			return nil, err
		}
		for src, dst := range p.Remaps {
			table[src] = dst
		}
	}

	for src, dst := range s.remaps.table {
		table[src] = dst
	}

	logger.NewLogger("remap").WithField("entries", len(table)).Debug("Remap table resolved")
	return table, nil
}

func loadProfileRef(opts *rootOptions, ref string) (*profile.Profile, error) {
	path, err := profile.Find(opts.cfg.ProfileDir, ref)
	if err != nil {
		return nil, err
	}
	return profile.Load(path)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
