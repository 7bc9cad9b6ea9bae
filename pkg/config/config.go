// Package config loads the mckeys CLI configuration from
// $XDG_CONFIG_HOME/mckeys/config.toml and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bafv4/minecraft-keybindings-sub001/pkg/logger"
)

// ColorMode controls styled output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Environment variables that override file values.
const (
	EnvProfileDir = "MCKEYS_PROFILE_DIR"
	EnvProfile    = "MCKEYS_PROFILE"
	EnvColor      = "MCKEYS_COLOR"
)

// Config is the [mckeys] configuration file.
type Config struct {
	// Directory scanned by `mckeys stats` and used to resolve bare profile names.
	ProfileDir string `toml:"profile_dir"`

	// Profile used when --profile is not given.
	DefaultProfile string    `toml:"default_profile"`
	Color          ColorMode `toml:"color"`
	LogLevel       string    `toml:"log_level"`

	// Path the configuration was read from; empty when defaults are in use.
	Path string `toml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// DefaultPath returns the configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "mckeys", "config.toml"), nil
}

// Load reads the configuration at path, or at DefaultPath when path is empty.
// A missing file yields the defaults; environment overrides always apply.
func Load(path string) (*Config, error) {
	log := logger.NewLogger("config")

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	switch {
	case err == nil:
		cfg.Path = path
		for _, key := range md.Undecoded() {
			log.WithField("key", key.String()).Warn("Ignoring unknown config key")
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		log.WithField("path", path).Debug("No config file, using defaults")
	default:
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ProfileDir = expandHome(cfg.ProfileDir)
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvProfileDir); v != "" {
		c.ProfileDir = v
	}
	if v := os.Getenv(EnvProfile); v != "" {
		c.DefaultProfile = v
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = ColorMode(strings.ToLower(v))
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
