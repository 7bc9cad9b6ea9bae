package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/spf13/cobra"
)

// newKeysCmd creates the parent 'mckeys keys' command.
func newKeysCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Translate between key codes and display labels",
		Long: `Translate between browser-style physical key codes (KeyW, ControlLeft,
MouseLeft) and the short labels shown to players (W, LCtrl, 左クリック).`,
	}

	cmd.AddCommand(newKeysDisplayCmd(opts))
	cmd.AddCommand(newKeysCodeCmd(opts))
	cmd.AddCommand(newKeysFormatCmd())
	cmd.AddCommand(newKeysListCmd(opts))

	return cmd
}

func newKeysDisplayCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "display <code>...",
		Short: "Show the display label for key codes",
		Example: `  mckeys keys display KeyW ControlLeft MouseLeft
  mckeys keys display --json ArrowUp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]keys.KeyInfo, 0, len(args))
			for _, code := range args {
				infos = append(infos, keys.KeyInfo{
					Code:    code,
					Display: keys.ToDisplay(code),
					Family:  keys.Classify(code),
				})
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), infos)
			}
			return printTranslations(cmd, opts, infos, func(k keys.KeyInfo) (string, string) {
				return k.Code, k.Display
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newKeysCodeCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "code <label>...",
		Short:   "Show the key code for display labels",
		Example: `  mckeys keys code W LCtrl 左クリック ↑`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]keys.KeyInfo, 0, len(args))
			for _, token := range args {
				code := keys.ToCode(token)
				infos = append(infos, keys.KeyInfo{
					Code:    code,
					Display: token,
					Family:  keys.Classify(code),
				})
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), infos)
			}
			return printTranslations(cmd, opts, infos, func(k keys.KeyInfo) (string, string) {
				return k.Display, k.Code
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newKeysFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <name>...",
		Short: "Format key names or '+' combinations for display",
		Long: `Format key names for display. Combinations joined with '+' are formatted
part by part, so "ControlLeft+KeyQ" becomes "LCtrl+Q".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), keys.FormatKeyName(name))
			}
			return nil
		},
	}
}

func newKeysListCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool
	var family string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every key with a dedicated display label",
		Long: `List the key vocabulary: every code that has a dedicated label, grouped by
family. Codes outside the vocabulary are displayed unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			families := keys.AllFamilies()
			if family != "" {
				f, err := parseFamily(family)
				if err != nil {
					return err
				}
				families = []keys.Family{f}
			}

			if jsonOutput {
				var infos []keys.KeyInfo
				for _, f := range families {
					infos = append(infos, keys.VocabularyByFamily(f)...)
				}
				return printJSON(cmd.OutOrStdout(), infos)
			}

			t := opts.theme
			out := cmd.OutOrStdout()
			for _, f := range families {
				infos := keys.VocabularyByFamily(f)
				if len(infos) == 0 {
					continue
				}
				fmt.Fprintln(out, t.Header.Render(strings.ToUpper(f.String())))
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, k := range infos {
					fmt.Fprintf(w, "  %s\t%s\n", k.Code, t.Highlight.Render(k.Display))
				}
				if err := w.Flush(); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&family, "family", "", "Only list one family (modifier, letter, digit, function, mouse, special)")
	return cmd
}

func parseFamily(name string) (keys.Family, error) {
	for _, f := range keys.AllFamilies() {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	names := make([]string, 0, len(keys.AllFamilies()))
	for _, f := range keys.AllFamilies() {
		names = append(names, f.String())
	}
	return "", fmt.Errorf("unknown key family %q (valid: %s)", name, strings.Join(names, ", "))
}

func printTranslations(cmd *cobra.Command, opts *rootOptions, infos []keys.KeyInfo, cols func(keys.KeyInfo) (string, string)) error {
	t := opts.theme
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, k := range infos {
		from, to := cols(k)
		fmt.Fprintf(w, "%s\t%s\t%s\n", from, t.Muted.Render(iconArrow), t.Highlight.Render(to))
	}
	return w.Flush()
}
