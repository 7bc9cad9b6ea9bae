package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/spf13/cobra"
)

var errRemapConflicts = errors.New("remap table has conflicts")

func newRemapCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remap",
		Short: "Inspect a remap table",
		Long: `Inspect the remap table taken from a profile and/or --remap flags.

A remap SRC=DST means pressing SRC produces DST, e.g. CapsLock=ControlLeft
makes Caps Lock act as left Ctrl.`,
	}

	cmd.AddCommand(newRemapShowCmd(opts))
	cmd.AddCommand(newRemapCheckCmd(opts))

	return cmd
}

type remapShowEntry struct {
	Source        string `json:"source"`
	Target        string `json:"target"`
	SourceDisplay string `json:"source_display"`
	TargetDisplay string `json:"target_display"`
}

type remapShowOutput struct {
	Remaps     []remapShowEntry `json:"remaps"`
	DisplayMap keys.DisplayMap  `json:"display_map"`
}

func newRemapShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show remaps and the display map used to resolve search strings",
		Example: `  mckeys remap show --remap CapsLock=ControlLeft
  mckeys remap show --profile runner --json`,
		Args: cobra.NoArgs,
	}
	src := addRemapFlags(cmd, opts)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		table, err := src.Table()
		if err != nil {
			return err
		}

		result := remapShowOutput{
			Remaps:     make([]remapShowEntry, 0, len(table)),
			DisplayMap: keys.BuildRemapDisplayMap(table),
		}
		for _, s := range table.Sources() {
			result.Remaps = append(result.Remaps, remapShowEntry{
				Source:        s,
				Target:        table[s],
				SourceDisplay: keys.ToDisplay(s),
				TargetDisplay: keys.ToDisplay(table[s]),
			})
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), result)
		}

		t := opts.theme
		out := cmd.OutOrStdout()
		if len(table) == 0 {
			fmt.Fprintln(out, t.Muted.Render("No remaps configured."))
			return nil
		}

		fmt.Fprintln(out, t.Header.Render("REMAPS"))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, e := range result.Remaps {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				e.SourceDisplay, t.Muted.Render(iconArrow), e.TargetDisplay,
				t.Muted.Render(fmt.Sprintf("(%s %s %s)", e.Source, iconArrow, e.Target)))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, t.Header.Render("DISPLAY MAP"))
		tokens := make([]string, 0, len(result.DisplayMap))
		for token := range result.DisplayMap {
			tokens = append(tokens, token)
		}
		sort.Strings(tokens)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, token := range tokens {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", token, t.Muted.Render(iconArrow), t.Highlight.Render(result.DisplayMap[token]))
		}
		return w.Flush()
	}

	return cmd
}

func newRemapCheckCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a remap table for entries that hide each other",
		Long: `Report remap entries that cannot all be resolved from a search string:

- shared_target: several source keys produce the same key
- display_collision: different target keys share one display label

Exits non-zero when conflicts are found.`,
		Args: cobra.NoArgs,
	}
	src := addRemapFlags(cmd, opts)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		table, err := src.Table()
		if err != nil {
			return err
		}

		conflicts := keys.DetectConflicts(table)
		if jsonOutput {
			if conflicts == nil {
				conflicts = []keys.Conflict{}
			}
			if err := printJSON(cmd.OutOrStdout(), conflicts); err != nil {
				return err
			}
		} else {
			printConflicts(cmd, opts, table, conflicts)
		}

		if len(conflicts) > 0 {
			return fmt.Errorf("%w: %d found", errRemapConflicts, len(conflicts))
		}
		return nil
	}

	return cmd
}

func printConflicts(cmd *cobra.Command, opts *rootOptions, table keys.RemapTable, conflicts []keys.Conflict) {
	t := opts.theme
	out := cmd.OutOrStdout()

	if len(conflicts) == 0 {
		fmt.Fprintf(out, "%s %s (%d remaps)\n",
			t.Success.Render(iconSuccess),
			t.Success.Render("No conflicts"),
			len(table))
		return
	}

	grouped := keys.GroupConflictsByKind(conflicts)
	for _, kind := range []keys.ConflictKind{keys.ConflictSharedTarget, keys.ConflictDisplayCollision} {
		group := grouped[kind]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s %s: %d\n",
			t.Error.Render(iconError),
			t.Bold.Render(strings.ToUpper(string(kind))),
			len(group))
		for _, c := range group {
			fmt.Fprintf(out, "    %s %s %s\n",
				t.Highlight.Render(c.Token),
				t.Muted.Render("<-"),
				strings.Join(c.Sources, ", "))
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, t.Warning.Render("Only one source per display label can be resolved from a search string."))
}
