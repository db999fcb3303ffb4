// Package config loads tool-level settings for the allocation engine CLI
// from flags, environment variables, and an optional config file, in that
// priority order.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. FAIRDIV_VERBOSITY=2.
	EnvPrefix = "FAIRDIV"

	// DefaultListenAddr is the default bind address for serve mode.
	DefaultListenAddr = ":8080"
)

// Config holds tool-level settings. Problem data is separate (pkg/config);
// this only configures the tool around it.
type Config struct {
	// Verbosity is the highest log V level that will be emitted.
	Verbosity int `mapstructure:"verbosity"`

	// Development switches logging to the human-oriented console encoding.
	Development bool `mapstructure:"development"`

	// ListenAddr is the bind address for serve mode.
	ListenAddr string `mapstructure:"listenAddr"`
}

// Load reads settings from the given viper instance, applying defaults and
// environment overrides, and validates the result. Flag bindings are
// expected to have been registered by the caller before Load runs.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	v.SetDefault("verbosity", 0)
	v.SetDefault("development", false)
	v.SetDefault("listenAddr", DefaultListenAddr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must be >= 0, got %d", c.Verbosity)
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listenAddr must not be empty")
	}
	return nil
}
