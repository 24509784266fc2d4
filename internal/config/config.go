// Package config provides configuration management for Signet.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version  int             `yaml:"version"`
	Home     string          `yaml:"home"`
	Network  string          `yaml:"network"` // name of the active network
	Networks []NetworkConfig `yaml:"networks"`
	Settings SettingsConfig  `yaml:"settings"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// NetworkConfig defines a single target chain.
type NetworkConfig struct {
	Name    string `yaml:"name"`
	ChainID uint64 `yaml:"chain_id"`
	RPC     string `yaml:"rpc"`
	Dev     bool   `yaml:"dev"` // local/test network, eligible for fast mode
}

// SettingsConfig defines user-tunable behavior.
type SettingsConfig struct {
	// FastMode skips the review dialog on dev networks with dev wallets.
	FastMode bool `yaml:"fast_mode"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultHome returns the default data directory (~/.signet).
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".signet"
	}
	return filepath.Join(home, ".signet")
}

// Path returns the config file path for a home directory.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config path comes from --home flag or env
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, signeterr.WithDetails(signeterr.ErrConfigNotFound, map[string]string{
				"path": path,
			})
		}
		return nil, signeterr.Wrap(err, "reading config file")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, signeterr.Wrap(signeterr.ErrConfigInvalid, "parsing %s", path)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return signeterr.Wrap(err, "marshaling config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return signeterr.Wrap(err, "creating config directory")
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return signeterr.Wrap(err, "writing config file")
	}

	return nil
}

// FindNetwork returns the network config with the given name.
func (c *Config) FindNetwork(name string) (*NetworkConfig, error) {
	for i := range c.Networks {
		if c.Networks[i].Name == name {
			return &c.Networks[i], nil
		}
	}
	return nil, signeterr.WithDetails(signeterr.ErrNetworkNotFound, map[string]string{
		"network": name,
	})
}

// ActiveNetwork returns the currently selected network config.
func (c *Config) ActiveNetwork() (*NetworkConfig, error) {
	return c.FindNetwork(c.Network)
}
