package config

import "github.com/docweave/docweave/internal/nav"

// Config is the top-level docweave configuration, corresponding to
// docweave.yml. The nav outline authored here is the single source of truth
// for page order.
type Config struct {
	Title     string      `yaml:"title" koanf:"title"`
	DocsDir   string      `yaml:"docs_dir" koanf:"docs_dir"`
	OutputDir string      `yaml:"output_dir" koanf:"output_dir"`
	BaseURL   string      `yaml:"base_url" koanf:"base_url"`
	Port      int         `yaml:"port" koanf:"port"`
	Include   []string    `yaml:"include" koanf:"include"`
	Exclude   []string    `yaml:"exclude" koanf:"exclude"`
	Nav       nav.Outline `yaml:"nav" koanf:"nav"`
}
