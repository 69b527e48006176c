// Copyright (c) 2026 Manytime Team
// Manytime - interactive many-time pad key recovery
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads manytime settings from defaults, a YAML file,
// MANYTIME_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full set of user-tunable settings.
type Config struct {
	// Output is where the export artifact is written.
	Output string `mapstructure:"output" yaml:"output"`
	// Placeholder marks unknown bytes in the display and the export.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	Language    string `mapstructure:"language" yaml:"language"`
	Log         struct {
		Level string `mapstructure:"level" yaml:"level"`
		// File receives log output while the TUI is running. Empty discards it.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"log" yaml:"log"`
	Recover struct {
		// Timeout bounds automatic key recovery. Zero means no limit.
		Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	} `mapstructure:"recover" yaml:"recover"`
}

// Defaults returns the built-in settings keyed the way viper expects.
func Defaults() map[string]any {
	return map[string]any{
		"output":          "result.json",
		"placeholder":     "_",
		"language":        "en",
		"log.level":       "info",
		"log.file":        "",
		"recover.timeout": time.Duration(0),
	}
}

// Validate checks values that viper cannot type-check.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Placeholder) != 1 {
		return fmt.Errorf("placeholder must be a single character, got %q", c.Placeholder)
	}
	if c.Recover.Timeout < 0 {
		return errors.New("recover.timeout must not be negative")
	}
	return nil
}

// PlaceholderRune returns the placeholder as a rune, defaulting to '_'.
func (c Config) PlaceholderRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Placeholder)
	if r == utf8.RuneError {
		return '_'
	}
	return r
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Manytime")
		default: // Linux, macOS, etc.
			configDir = "/etc/manytime"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "manytime")
	}

	return filepath.Join(configDir, "manytime.yaml"), nil
}

// LoadConfig resolves T from defaults, config files, the environment and the
// flags of cmd. A missing config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("manytime")
	v.SetConfigType("yaml")

	// 3. An explicit --config path takes precedence over the search paths.
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 4. Read in the config file.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	// 5. Environment variables
	v.SetEnvPrefix("manytime")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 6. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", err
	}
	return path, nil
}
