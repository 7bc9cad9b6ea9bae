package cmd

import (
	"fmt"
	"strings"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/searchcraft"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSearchCraftCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "searchcraft",
		Aliases: []string{"sc"},
		Short:   "Encode and decode search-craft inputs",
		Long: fmt.Sprintf(`Search-craft types up to %d characters into the recipe book search box.
Letters become KeyX codes, digits DigitN, and any other printable character
Char_<c>.`, searchcraft.MaxLength),
	}

	cmd.AddCommand(newSearchCraftEncodeCmd())
	cmd.AddCommand(newSearchCraftDecodeCmd())
	cmd.AddCommand(newSearchCraftTUICmd(opts))

	return cmd
}

func newSearchCraftEncodeCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text into key codes",
		Example: `  mckeys searchcraft encode boat     # KeyB KeyO KeyA KeyT
  mckeys searchcraft encode "a1!"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := searchcraft.Encode(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), codes)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codes, " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newSearchCraftDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "decode <code>...",
		Short:   "Decode key codes back into text",
		Long:    `Decode key codes back into text. Codes that are not KeyX, DigitN or Char_<c> are skipped.`,
		Example: `  mckeys searchcraft decode KeyB KeyO KeyA KeyT   # boat`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), searchcraft.Decode(args))
			return nil
		},
	}
}

func newSearchCraftTUICmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Type a search-craft input interactively",
		Long: `Type a search-craft input and see its key codes, the keys to press under
your remaps, and the resulting search string as you type. Press enter to
print the codes and exit.`,
		Args: cobra.NoArgs,
	}
	src := addRemapFlags(cmd, opts)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		table, err := src.Table()
		if err != nil {
			return err
		}

		m := newSearchCraftModel(table, opts.theme)
		p := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr()))
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("search-craft TUI failed: %w", err)
		}

		if fm, ok := final.(searchCraftModel); ok && fm.accepted && fm.err == nil && len(fm.codes) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(fm.codes, " "))
		}
		return nil
	}

	return cmd
}
