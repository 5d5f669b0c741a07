package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCWEAVE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: DOCWEAVE_PORT -> port, etc.
	if err := k.Load(env.Provider("DOCWEAVE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DOCWEAVE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values, including
// the nav outline invariants that current-page lookup depends on.
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title is required")
	}
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "/") && !strings.HasPrefix(c.BaseURL, "http") {
		return fmt.Errorf("base_url must be absolute or start with /")
	}
	if err := c.Nav.Validate(); err != nil {
		return fmt.Errorf("invalid nav: %w", err)
	}
	return nil
}
