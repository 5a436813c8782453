package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.json
var defaultSite []byte

// Default returns the embedded content set.
func Default() (*Site, error) {
	site, err := Parse(defaultSite, ".json")
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return site, nil
}

// Load reads and validates a content file. The format is chosen by
// extension: .yaml and .yml are YAML, anything else is JSON.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// LoadOrDefault loads path, or the embedded content when path is empty.
func LoadOrDefault(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes and validates content in the format named by ext.
func Parse(data []byte, ext string) (*Site, error) {
	var site Site
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the invariants the views rely on.
func (s *Site) Validate() error {
	var errs []error
	if strings.TrimSpace(s.Profile.Name) == "" {
		errs = append(errs, errors.New("profile name is required"))
	}
	for i, sk := range s.Skills {
		if sk.Level < 0 || sk.Level > 100 {
			errs = append(errs, fmt.Errorf("skill %d (%s): level %d outside 0-100", i, sk.Name, sk.Level))
		}
	}
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("project %d: title is required", i))
		}
		for j, m := range p.Media {
			if m.Kind != MediaVideo && m.Kind != MediaImage {
				errs = append(errs, fmt.Errorf("project %d media %d: unknown kind %q", i, j, m.Kind))
			}
		}
	}
	for i, r := range s.Reviews {
		if r.Rating < 1 || r.Rating > 5 {
			errs = append(errs, fmt.Errorf("review %d (%s): rating %d outside 1-5", i, r.Name, r.Rating))
		}
	}
	return errors.Join(errs...)
}
