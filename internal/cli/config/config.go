// Package config loads the chisel configuration from chisel.yml or the
// environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/chisel-web/chisel/compiler/compat"
)

// Config represents the chisel configuration
type Config struct {
	// Targets maps browser names to minimum supported versions, e.g.
	// {chrome: "29", ie: "9"}. An empty map prefixes for every browser.
	Targets map[string]string `mapstructure:"targets"`

	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	// Color controls terminal color output.
	Color bool `mapstructure:"color"`
	// JSON switches diagnostics to machine-readable output.
	JSON bool `mapstructure:"json"`
}

// Load loads the configuration from chisel.yml or chisel.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("output.color", true)
	v.SetDefault("output.json", false)

	// Set config name and paths
	v.SetConfigName("chisel")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("CHISEL")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ResolveTargets converts the configured target map into the version set
// the prefixer consumes.
func (c *Config) ResolveTargets() (compat.Versions, error) {
	if len(c.Targets) == 0 {
		return compat.Versions{}, nil
	}

	versions, err := compat.ParseVersions(c.Targets)
	if err != nil {
		return nil, fmt.Errorf("invalid targets: %w", err)
	}
	return versions, nil
}
