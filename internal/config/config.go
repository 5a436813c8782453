package config

import "time"

// Config is the root configuration structure.
type Config struct {
	Navigation NavigationConfig `json:"navigation"`
	UI         UIConfig         `json:"ui"`
	Content    ContentConfig    `json:"content"`
}

// NavigationConfig tunes section tracking and scroll animation.
type NavigationConfig struct {
	LookaheadLines int           `json:"lookaheadLines"`
	HeaderLines    int           `json:"headerLines"`
	ScrollFrame    time.Duration `json:"scrollFrame"`
	ScrollEase     float64       `json:"scrollEase"` // fraction of the remaining distance per frame
}

// UIConfig configures UI appearance.
type UIConfig struct {
	Theme        string `json:"theme"` // "dark" or "light"
	ShowFooter   bool   `json:"showFooter"`
	CompactWidth int    `json:"compactWidth"`
	Mouse        bool   `json:"mouse"`
}

// ContentConfig points at the portfolio content file.
type ContentConfig struct {
	Path string `json:"path"` // empty uses the embedded content
}

const (
	defaultLookahead    = 3
	defaultHeader       = 1
	defaultScrollFrame  = 16 * time.Millisecond
	defaultScrollEase   = 0.35
	defaultCompactWidth = 80
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Navigation: NavigationConfig{
			LookaheadLines: defaultLookahead,
			HeaderLines:    defaultHeader,
			ScrollFrame:    defaultScrollFrame,
			ScrollEase:     defaultScrollEase,
		},
		UI: UIConfig{
			Theme:        "dark",
			ShowFooter:   true,
			CompactWidth: defaultCompactWidth,
			Mouse:        true,
		},
	}
}

// Validate checks the configuration for errors, correcting values that
// would break scrolling.
func (c *Config) Validate() error {
	if c.Navigation.LookaheadLines < 0 {
		c.Navigation.LookaheadLines = defaultLookahead
	}
	if c.Navigation.HeaderLines < 0 {
		c.Navigation.HeaderLines = defaultHeader
	}
	if c.Navigation.ScrollFrame <= 0 {
		c.Navigation.ScrollFrame = defaultScrollFrame
	}
	if c.Navigation.ScrollEase <= 0 || c.Navigation.ScrollEase > 1 {
		c.Navigation.ScrollEase = defaultScrollEase
	}
	if c.UI.CompactWidth < 0 {
		c.UI.CompactWidth = defaultCompactWidth
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		c.UI.Theme = "dark"
	}
	return nil
}
