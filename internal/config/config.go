// Package config handles persistent CLI settings stored under the user's
// home directory (~/.jumpstart/config.yaml) and overridable through
// JUMPSTART_* environment variables via Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jumpstart-labs/jumpstart/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI. Anything else in the config file is ignored.
const (
	KeyScaffoldImage    = "scaffold.image"    // base image for generated Dockerfiles
	KeyScaffoldTemplate = "scaffold.template" // template passed to the project generator
	KeyPluginsDir       = "plugins.dir"       // directory scanned for plugin manifests
	KeyTerminalShell    = "terminal.shell"    // shell launched by `jumpstart terminal`
)

// Dir returns the path to the config directory (~/.jumpstart/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.jumpstart/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyScaffoldImage, "node:22-alpine")
	viper.SetDefault(KeyScaffoldTemplate, "react")
	viper.SetDefault(KeyPluginsDir, "deps")
	viper.SetDefault(KeyTerminalShell, "sh")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
