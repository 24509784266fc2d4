package config

import "sync"

// Settings holds runtime-mutable user settings. Reads take a short-lived
// shared lock so a pending review never blocks other lookups.
type Settings struct {
	mu       sync.RWMutex
	fastMode bool
}

// NewSettings creates Settings from a loaded configuration.
func NewSettings(cfg SettingsConfig) *Settings {
	return &Settings{fastMode: cfg.FastMode}
}

// FastMode reports whether the review dialog may be skipped on dev
// networks with dev wallets.
func (s *Settings) FastMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fastMode
}

// SetFastMode toggles fast mode.
func (s *Settings) SetFastMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fastMode = on
}
