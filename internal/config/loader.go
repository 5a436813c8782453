package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/folio"
	configFile = "config.json"
)

var overridePath string

// ConfigDir returns the directory holding the config file.
func ConfigDir() string {
	if overridePath != "" {
		return filepath.Dir(overridePath)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDir
	}
	return filepath.Join(home, configDir)
}

// ConfigPath returns the path of the config file.
func ConfigPath() string {
	if overridePath != "" {
		return overridePath
	}
	return filepath.Join(ConfigDir(), configFile)
}

// SetConfigPath redirects ConfigPath, Load and Save to path. An empty
// path restores the default location.
func SetConfigPath(path string) { overridePath = expandPath(path) }

// SetTestConfigPath redirects the config location for a test.
func SetTestConfigPath(path string) { overridePath = path }

// ResetTestConfigPath restores the default config location.
func ResetTestConfigPath() { overridePath = "" }

// rawConfig mirrors Config with durations as strings ("16ms").
type rawConfig struct {
	Navigation *struct {
		LookaheadLines *int     `json:"lookaheadLines"`
		HeaderLines    *int     `json:"headerLines"`
		ScrollFrame    *string  `json:"scrollFrame"`
		ScrollEase     *float64 `json:"scrollEase"`
	} `json:"navigation"`
	UI *struct {
		Theme        *string `json:"theme"`
		ShowFooter   *bool   `json:"showFooter"`
		CompactWidth *int    `json:"compactWidth"`
		Mouse        *bool   `json:"mouse"`
	} `json:"ui"`
	Content *struct {
		Path *string `json:"path"`
	} `json:"content"`
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path over the defaults. A missing file
// yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := mergeConfig(cfg, &raw); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig copies every field present in raw onto cfg.
func mergeConfig(cfg *Config, raw *rawConfig) error {
	if n := raw.Navigation; n != nil {
		if n.LookaheadLines != nil {
			cfg.Navigation.LookaheadLines = *n.LookaheadLines
		}
		if n.HeaderLines != nil {
			cfg.Navigation.HeaderLines = *n.HeaderLines
		}
		if n.ScrollFrame != nil {
			d, err := time.ParseDuration(*n.ScrollFrame)
			if err != nil {
				return fmt.Errorf("navigation.scrollFrame: %w", err)
			}
			cfg.Navigation.ScrollFrame = d
		}
		if n.ScrollEase != nil {
			cfg.Navigation.ScrollEase = *n.ScrollEase
		}
	}
	if u := raw.UI; u != nil {
		if u.Theme != nil {
			cfg.UI.Theme = strings.ToLower(*u.Theme)
		}
		if u.ShowFooter != nil {
			cfg.UI.ShowFooter = *u.ShowFooter
		}
		if u.CompactWidth != nil {
			cfg.UI.CompactWidth = *u.CompactWidth
		}
		if u.Mouse != nil {
			cfg.UI.Mouse = *u.Mouse
		}
	}
	if c := raw.Content; c != nil && c.Path != nil {
		cfg.Content.Path = expandPath(*c.Path)
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
