package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome     = "SIGNET_HOME"
	EnvNetwork  = "SIGNET_NETWORK"
	EnvRPC      = "SIGNET_RPC"
	EnvFastMode = "SIGNET_FAST_MODE"
	EnvLogLevel = "SIGNET_LOG_LEVEL"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvNetwork); v != "" {
		cfg.Network = v
	}

	// SIGNET_RPC overrides the RPC URL of the active network only.
	if v := os.Getenv(EnvRPC); v != "" {
		for i := range cfg.Networks {
			if cfg.Networks[i].Name == cfg.Network {
				cfg.Networks[i].RPC = strings.TrimSpace(v)
			}
		}
	}

	if v := os.Getenv(EnvFastMode); v != "" {
		cfg.Settings.FastMode = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
