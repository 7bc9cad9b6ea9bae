package cmd

import (
	"fmt"
	"strings"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/spf13/cobra"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Build and resolve search strings",
		Long: `A search string is a sequence of display labels, either joined with '+'
("LCtrl+Q") or written as one label per character ("AB"). Resolving looks
each label up through the remap table to find the key that is physically
pressed.`,
	}

	cmd.AddCommand(newSearchBuildCmd(opts))
	cmd.AddCommand(newSearchResolveCmd(opts))

	return cmd
}

func newSearchBuildCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <code>...",
		Short: "Build a search string from key codes",
		Example: `  mckeys search build ControlLeft KeyQ          # LCtrl+Q
  mckeys search build KeyA KeyB                 # AB
  mckeys search build ControlLeft --remap ControlLeft=CapsLock`,
		Args: cobra.MinimumNArgs(1),
	}
	src := addRemapFlags(cmd, opts)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		table, err := src.Table()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), keys.BuildSearchString(args, table))
		return nil
	}

	return cmd
}

type resolvedKey struct {
	Token   string `json:"token"`
	Code    string `json:"code"`
	Display string `json:"display"`
}

func newSearchResolveCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve <search-string>",
		Short: "Resolve a search string to the physical keys to press",
		Example: `  mckeys search resolve "LCtrl+Q" --remap CapsLock=ControlLeft   # CapsLock KeyQ
  mckeys search resolve AB`,
		Args: cobra.ExactArgs(1),
	}
	src := addRemapFlags(cmd, opts)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		table, err := src.Table()
		if err != nil {
			return err
		}

		codes := keys.ResolveSearchString(args[0], keys.BuildRemapDisplayMap(table))
		if jsonOutput {
			tokens := keys.SearchTokens(args[0])
			out := make([]resolvedKey, len(codes))
			for i, code := range codes {
				out[i] = resolvedKey{Token: tokens[i], Code: code, Display: keys.ToDisplay(code)}
			}
			return printJSON(cmd.OutOrStdout(), out)
		}

		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codes, " "))
		return nil
	}

	return cmd
}
