package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type savedNavigation struct {
	LookaheadLines int     `json:"lookaheadLines"`
	HeaderLines    int     `json:"headerLines"`
	ScrollFrame    string  `json:"scrollFrame"`
	ScrollEase     float64 `json:"scrollEase"`
}

// Save writes cfg to the config file. Keys the config does not manage are
// kept as they are.
func Save(cfg *Config) error {
	path := ConfigPath()

	doc := make(map[string]json.RawMessage)
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse existing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read config: %w", err)
	}

	managed := map[string]any{
		"navigation": savedNavigation{
			LookaheadLines: cfg.Navigation.LookaheadLines,
			HeaderLines:    cfg.Navigation.HeaderLines,
			ScrollFrame:    cfg.Navigation.ScrollFrame.String(),
			ScrollEase:     cfg.Navigation.ScrollEase,
		},
		"ui":      cfg.UI,
		"content": cfg.Content,
	}
	for key, v := range managed {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		doc[key] = raw
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SaveTheme persists the theme name, leaving the rest of the file intact.
func SaveTheme(theme string) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.UI.Theme = theme
	return Save(cfg)
}
