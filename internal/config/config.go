// Copyright (c) 2026 Roster Team
// Roster - employee directory
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Roster settings from defaults, config files,
// ROSTER_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the effective Roster configuration.
type Config struct {
	Language string  `mapstructure:"language" yaml:"language"`
	LogLevel string  `mapstructure:"log_level" yaml:"log_level"`
	Listing  Listing `mapstructure:"listing" yaml:"listing"`
	Summary  Summary `mapstructure:"summary" yaml:"summary"`
}

// Listing controls how department listings are presented.
type Listing struct {
	// Sorted orders departments and names alphabetically instead of by
	// insertion.
	Sorted bool `mapstructure:"sorted" yaml:"sorted"`
}

// Summary controls the summary command.
type Summary struct {
	MedianRule string `mapstructure:"median_rule" yaml:"median_rule"`
}

// Defaults returns the built-in values used when nothing else sets a key.
func Defaults() map[string]any {
	return map[string]any{
		"language":            "en",
		"log_level":           "warn",
		"listing.sorted":      false,
		"summary.median_rule": "conventional",
	}
}

// configFileName is the file searched for in every config directory.
const configFileName = "roster.yaml"

// configDir returns the per-user directory, or the system-wide one, that
// holds roster.yaml.
func configDir(system bool) (string, error) {
	if !system {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("user config dir: %w", err)
		}
		return filepath.Join(dir, "roster"), nil
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("ProgramData"), "Roster"), nil
	}
	return "/etc/roster", nil
}

// LoadConfig builds a T from defaults, roster.yaml (explicit path, then user
// dir, system dir and cwd), a local .roster.yaml override, ROSTER_* env vars
// and the flags of cmd. A missing config file is not an error.
// The viper instance is returned alongside so callers can report which
// file was used.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, *viper.Viper, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("roster")
	v.SetConfigType("yaml")

	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	for _, system := range []bool{false, true} {
		if dir, err := configDir(system); err == nil {
			v.AddConfigPath(dir)
		}
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, v, err
		}
	}

	if err := mergeLocalConfig(v); err != nil {
		return c, v, err
	}

	v.SetEnvPrefix("roster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(false)
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, v, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, v, err
	}

	return c, v, nil
}

// mergeLocalConfig merges a .roster.yaml in the current directory on top of
// whatever was read so far. A malformed override is an error.
func mergeLocalConfig(v *viper.Viper) error {
	const localConfigFile = ".roster.yaml"
	if _, err := os.Stat(localConfigFile); err != nil {
		return nil
	}
	used := v.ConfigFileUsed()
	v.SetConfigFile(localConfigFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("merge %s: %w", localConfigFile, err)
	}
	if used != "" {
		v.SetConfigFile(used)
	}
	return nil
}

// WriteConfigFile writes c as YAML to roster.yaml in the user (or system)
// config directory and returns the path written. An existing file is
// replaced.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	dir, err := configDir(system)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

const configHeader = "# Roster configuration. Keys may be overridden by ROSTER_* variables and flags.\n"
