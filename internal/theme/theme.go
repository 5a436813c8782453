// Package theme defines the light/dark theme capability the UI toggles.
// Persistence belongs to the capability implementation, not its callers.
package theme

import (
	"fmt"
	"strings"

	"github.com/marcus/folio/internal/config"
)

// Mode is the color theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode resolves a theme name.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return Dark, fmt.Errorf("unknown theme %q", name)
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Capability exposes the current theme and changes it.
type Capability interface {
	Current() Mode
	Set(Mode) error
}

// Toggle switches c to the opposite mode and returns the mode now current.
func Toggle(c Capability) (Mode, error) {
	err := c.Set(c.Current().Opposite())
	return c.Current(), err
}

// Memory is a Capability with no persistence.
type Memory struct {
	mode Mode
}

// NewMemory returns an in-memory capability starting at m.
func NewMemory(m Mode) *Memory { return &Memory{mode: m} }

func (s *Memory) Current() Mode { return s.mode }

func (s *Memory) Set(m Mode) error {
	s.mode = m
	return nil
}

// ConfigStore is a Capability persisted in the config file.
type ConfigStore struct {
	mode Mode
	save func(string) error
}

// NewConfigStore starts from the configured theme and saves changes with
// config.SaveTheme.
func NewConfigStore(cfg *config.Config) *ConfigStore {
	mode, err := ParseMode(cfg.UI.Theme)
	if err != nil {
		mode = Dark
	}
	return &ConfigStore{mode: mode, save: config.SaveTheme}
}

func (s *ConfigStore) Current() Mode { return s.mode }

// Set changes the mode in memory first so a failed save still takes effect
// for this session.
func (s *ConfigStore) Set(m Mode) error {
	s.mode = m
	if err := s.save(string(m)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Sync adopts a mode changed on disk without saving it back.
func (s *ConfigStore) Sync(cfg *config.Config) bool {
	mode, err := ParseMode(cfg.UI.Theme)
	if err != nil || mode == s.mode {
		return false
	}
	s.mode = mode
	return true
}
