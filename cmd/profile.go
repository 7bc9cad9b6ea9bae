package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bafv4/minecraft-keybindings-sub001/pkg/keys"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/logger"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/profile"
	"github.com/spf13/cobra"
)

var errInvalidProfiles = errors.New("invalid profiles")

func newProfileCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Validate and inspect keybinding profiles",
		Long: `Profiles describe one player's setup: in-game keybindings, external key
remaps, mouse settings and search-craft sequences. They can be written in
TOML, YAML or JSON.`,
	}

	cmd.AddCommand(newProfileValidateCmd(opts))
	cmd.AddCommand(newProfileShowCmd(opts))
	cmd.AddCommand(newProfileSchemaCmd())

	return cmd
}

func newProfileValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile>...",
		Short: "Validate profile files",
		Long:  `Validate one or more profiles. Each argument is a path or a name under the configured profile directory.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := opts.theme
			out := cmd.OutOrStdout()
			log := logger.NewLogger("profile")

			failed := 0
			for _, ref := range args {
				p, err := loadProfileRef(opts, ref)
				if err == nil {
					err = p.Validate()
				}
				if err != nil {
					failed++
					log.WithField("profile", ref).WithError(err).Debug("Validation failed")
					fmt.Fprintf(out, "%s %s\n", t.Error.Render(iconError), t.Bold.Render(ref))
					fmt.Fprintf(out, "    %s\n", t.Error.Render(err.Error()))
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n",
					t.Success.Render(iconSuccess),
					t.Bold.Render(ref),
					t.Muted.Render("("+p.Player.Name+")"))
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidProfiles, failed, len(args))
			}
			return nil
		},
	}
}

type profileShowOutput struct {
	Player        profile.Player         `json:"player"`
	FormatVersion string                 `json:"format_version"`
	Source        string                 `json:"source"`
	Bindings      []profile.Binding      `json:"bindings"`
	Deviations    []profile.Deviation    `json:"deviations"`
	SearchCraft   []profile.SearchString `json:"search_craft"`
	Mouse         profile.Mouse          `json:"mouse"`
}

func newProfileShowCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show [profile]",
		Short: "Show a profile's bindings as the player presses them",
		Long: `Show a profile's keybindings resolved through its remaps, the bindings that
differ from vanilla defaults, and its search-craft sequences.

Without an argument the configured default profile is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := opts.cfg.DefaultProfile
			if len(args) == 1 {
				ref = args[0]
			}
			if ref == "" {
				return errors.New("no profile given and no default_profile configured")
			}

			p, err := loadProfileRef(opts, ref)
			if err != nil {
				return err
			}

			result := profileShowOutput{
				Player:        p.Player,
				FormatVersion: p.FormatVersion,
				Source:        p.Source,
				Bindings:      p.Bindings(),
				Deviations:    p.Deviations(),
				SearchCraft:   p.SearchStrings(),
				Mouse:         p.Mouse,
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), result)
			}
			return printProfile(cmd, opts, result)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func printProfile(cmd *cobra.Command, opts *rootOptions, p profileShowOutput) error {
	t := opts.theme
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, t.Header.Render(p.Player.Name))
	if p.Player.UUID != "" {
		fmt.Fprintln(out, t.Muted.Render(p.Player.UUID))
	}
	if p.Mouse.DPI > 0 || p.Mouse.Sensitivity > 0 {
		fmt.Fprintf(out, "%s %d DPI, %.0f%% sensitivity\n", t.Muted.Render("mouse:"), p.Mouse.DPI, p.Mouse.Sensitivity)
	}
	fmt.Fprintln(out)

	if len(p.Bindings) > 0 {
		fmt.Fprintln(out, t.Bold.Render("BINDINGS"))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ACTION\tKEY\tPRESS")
		for _, b := range p.Bindings {
			press := b.PressedDisplay
			if !b.Reachable {
				press = t.Error.Render(iconError + " unreachable")
			} else if b.Pressed != b.Code {
				press = t.Highlight.Render(press)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", b.Action, b.Display, press)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if len(p.Deviations) > 0 {
		fmt.Fprintln(out, t.Bold.Render("CHANGED FROM DEFAULT"))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, d := range p.Deviations {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", d.Action,
				t.Muted.Render(keys.FormatKeyName(d.Default)), t.Muted.Render(iconArrow), keys.FormatKeyName(d.Code))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	if len(p.SearchCraft) > 0 {
		fmt.Fprintln(out, t.Bold.Render("SEARCH CRAFT"))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, s := range p.SearchCraft {
			fmt.Fprintf(w, "  %s\t%q\t%s\n", s.Name, s.Input, t.Highlight.Render(s.Text))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func newProfileSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for profile files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := profile.SchemaJSON()
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("failed to write schema: %w", err)
			}
			logger.NewLogger("profile").WithField("path", output).Info("Schema written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the schema to a file instead of stdout")
	return cmd
}
