package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/profile"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/stats"
	"github.com/spf13/cobra"
)

const statsTopKeys = 10

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool
	var variedOnly bool

	cmd := &cobra.Command{
		Use:   "stats [dir|file]...",
		Short: "Compare keybindings across many profiles",
		Long: `Load every profile under the given directories (or the configured
profile_dir) and report which keys players bind each action to, the most
pressed keys after remaps, and the most common remaps.

Profiles that fail to load are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if opts.cfg.ProfileDir == "" {
					return errors.New("no profiles given and no profile_dir configured")
				}
				args = []string{opts.cfg.ProfileDir}
			}

			paths, err := collectProfilePaths(args)
			if err != nil {
				return err
			}

			profiles, failures := profile.LoadAll(paths)
			for _, f := range failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", opts.theme.Warning.Render(iconError), f.Error())
			}
			if len(profiles) == 0 {
				return fmt.Errorf("no profiles could be loaded from %s", strings.Join(args, ", "))
			}

			report := stats.Build(profiles)
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), report)
			}
			return printStats(cmd, opts, report, variedOnly)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&variedOnly, "varied", false, "Only show actions players bind differently")
	return cmd
}

func collectProfilePaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := profile.Discover(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}

func printStats(cmd *cobra.Command, opts *rootOptions, r stats.Report, variedOnly bool) error {
	t := opts.theme
	out := cmd.OutOrStdout()

	s := r.Summary
	fmt.Fprintln(out, t.Header.Render("SUMMARY"))
	fmt.Fprintf(out, "  profiles:          %d\n", s.Profiles)
	fmt.Fprintf(out, "  with remaps:       %d\n", s.WithRemaps)
	fmt.Fprintf(out, "  with search-craft: %d\n", s.WithSearchCraft)
	if s.AverageDPI > 0 {
		fmt.Fprintf(out, "  average DPI:       %.0f\n", s.AverageDPI)
	}
	if s.AverageSensitivity > 0 {
		fmt.Fprintf(out, "  average sens:      %.1f%%\n", s.AverageSensitivity)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, t.Header.Render("ACTIONS"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ACTION\tDEFAULT\tMOST COMMON\tSPREAD")
	for _, row := range r.Matrix.Rows {
		if variedOnly && row.Consistent {
			continue
		}
		spread := make([]string, 0, len(row.Counts))
		for _, c := range row.Counts {
			spread = append(spread, fmt.Sprintf("%s×%d", c.Display, c.Count))
		}
		mark := t.Success.Render(iconSuccess)
		if !row.Consistent {
			mark = t.Warning.Render("~")
		}
		fmt.Fprintf(w, "  %s\t%s\t%s %s\t%s\n",
			row.Action,
			t.Muted.Render(keys.FormatKeyName(row.Default)),
			mark,
			keys.ToDisplay(row.MostCommon),
			t.Muted.Render(strings.Join(spread, " ")))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if len(r.Keys) > 0 {
		fmt.Fprintln(out, t.Header.Render("MOST PRESSED KEYS"))
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for i, k := range r.Keys {
			if i == statsTopKeys {
				break
			}
			fmt.Fprintf(w, "  %s\t%s\t%d\n", t.Highlight.Render(k.Display), t.Muted.Render(k.Key), k.Count)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if len(r.Remaps) > 0 {
		fmt.Fprintln(out, t.Header.Render("REMAPS"))
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, rc := range r.Remaps {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%d\n", rc.SourceDisplay, t.Muted.Render(iconArrow), rc.TargetDisplay, rc.Count)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
