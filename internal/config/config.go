// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package config loads the Little Tools configuration with Viper (defaults,
// config file, LITTLETOOLS_* environment, command-line flags) and writes the
// default config file. Tool state is never stored here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appName    = "littletools"
	envPrefix  = "littletools"
	configType = "yaml"
)

// Config is the effective application configuration.
type Config struct {
	Language  string    `mapstructure:"language" yaml:"language"`
	Timezone  string    `mapstructure:"timezone" yaml:"timezone"`
	StartPage string    `mapstructure:"start_page" yaml:"start_page"`
	Clipboard bool      `mapstructure:"clipboard" yaml:"clipboard"`
	Log       LogConfig `mapstructure:"log" yaml:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Defaults returns the viper defaults for Config keys.
func Defaults() map[string]any {
	return map[string]any{
		"language":   "en",
		"timezone":   "Local",
		"start_page": "/",
		"clipboard":  true,
		"log.level":  "info",
		"log.file":   "",
	}
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"language":   "language",
	"timezone":   "timezone",
	"start-page": "start_page",
	"clipboard":  "clipboard",
	"log-level":  "log.level",
	"log-file":   "log.file",
}

// Location resolves Timezone. Empty and "Local" mean the system zone.
func (c Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local", "local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "LittleTools")
		default:
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+"."+configType), nil
}

// LoadConfig builds a T from, in increasing precedence, defaults, the first
// config file found (or configFile when given), LITTLETOOLS_* environment
// variables and the flags of cmd listed in flagKeys. A missing config file is
// not an error. used is the path of the file read, or "".
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, flagKeys map[string]string, configFile *string) (c T, used string, err error) {
	v := viper.New()

	// 1. defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. file search paths, an explicit file wins
	v.SetConfigName(appName)
	v.SetConfigType(configType)
	if configFile != nil && *configFile != "" {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("error reading config: %w", err)
		}
	}

	// 3. environment
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. flags
	if cmd != nil {
		for flag, key := range flagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, "", fmt.Errorf("could not bind flag --%s: %w", flag, err)
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("error decoding config: %w", err)
	}
	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile stores c as YAML at the user (or system) config path and
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
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
