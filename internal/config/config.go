// Package config loads optional defaults from the user's TOML config
// file. Everything in it can also be set per-invocation with flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults applied before flag parsing.
type Config struct {
	// Theme is the default theme name, "light" or "dark".
	Theme string `toml:"theme"`

	// OutputDir overrides the default directory for generated HTML
	// files.
	OutputDir string `toml:"output_dir"`

	// Env adds variables forced into the child environment, for tools
	// that honor neither CLICOLOR_FORCE nor FORCE_COLOR.
	Env map[string]string `toml:"env"`
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/ansi-senor/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ansi-senor", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields a zero Config.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}
