package cmd

import (
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/config"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/logger"
	"github.com/spf13/cobra"
)

// rootOptions carries global flags and the loaded configuration to subcommands.
type rootOptions struct {
	configPath string
	verbose    bool
	noColor    bool

	cfg   *config.Config
	theme theme
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		cfg:   config.Default(),
		theme: newTheme(false),
	}

	cmd := &cobra.Command{
		Use:   "mckeys",
		Short: "Inspect and share Minecraft speedrun key configurations",
		Long: `Translate key codes to display labels, resolve search strings through
key remaps, encode search-craft inputs, and compare keybinding profiles.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/mckeys/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	cmd.AddCommand(newKeysCmd(opts))
	cmd.AddCommand(newRemapCmd(opts))
	cmd.AddCommand(newSearchCmd(opts))
	cmd.AddCommand(newSearchCraftCmd(opts))
	cmd.AddCommand(newProfileCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	log := logger.NewLogger("root")
	if o.verbose {
		logger.EnableDebug()
	} else if cfg.LogLevel != "" && !logger.SetLevel(cfg.LogLevel) {
		log.WithField("level", cfg.LogLevel).Warn("Unknown log level in config")
	}

	color := useColor(cfg.Color, o.noColor, cmd.OutOrStdout())
	if !color {
		logger.DisableColors()
	}
	o.theme = newTheme(color)

	log.WithField("config", cfg.Path).Debug("Configuration loaded")
	return nil
}

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}
