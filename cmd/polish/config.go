package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"polish/internal/driver"
)

type tomlConfig struct {
	Eval evalSection `toml:"eval"`
	Repl replSection `toml:"repl"`
}

type evalSection struct {
	MaxDepth  int  `toml:"max_depth"`
	Power     bool `toml:"power"`
	Precision int  `toml:"precision"`
}

type replSection struct {
	HistorySize int `toml:"history_size"`
}

func defaultConfig() tomlConfig {
	return tomlConfig{
		Eval: evalSection{Precision: -1},
	}
}

// findPolishToml walks up from startDir looking for polish.toml.
func findPolishToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "polish.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads polish.toml if present. An explicit path must exist;
// a searched-for file is optional.
func loadConfig(explicitPath string) (tomlConfig, error) {
	cfg := defaultConfig()

	path := explicitPath
	if path == "" {
		found, ok, err := findPolishToml(".")
		if err != nil || !ok {
			return cfg, err
		}
		path = found
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return cfg, nil
}

// settings is the merged view of config file and flags. Flags win.
type settings struct {
	opts      driver.Options
	precision int
	histSize  int
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		opts: driver.Options{
			MaxDepth: cfg.Eval.MaxDepth,
			Power:    cfg.Eval.Power,
		},
		precision: cfg.Eval.Precision,
		histSize:  cfg.Repl.HistorySize,
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	s.opts.MaxDiagnostics = maxDiagnostics

	flags := cmd.Flags()
	if f := flags.Lookup("max-depth"); f != nil && f.Changed {
		if s.opts.MaxDepth, err = flags.GetInt("max-depth"); err != nil {
			return settings{}, err
		}
	}
	if f := flags.Lookup("power"); f != nil && f.Changed {
		if s.opts.Power, err = flags.GetBool("power"); err != nil {
			return settings{}, err
		}
	}
	if f := flags.Lookup("precision"); f != nil && f.Changed {
		if s.precision, err = flags.GetInt("precision"); err != nil {
			return settings{}, err
		}
	}
	return s, nil
}
