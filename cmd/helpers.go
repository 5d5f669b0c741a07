package cmd

import (
	"fmt"

	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/progress"
	"github.com/docweave/docweave/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docweave init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newGenerator builds a site generator from the config, with terminal
// progress reporting attached.
func newGenerator(cfg *config.Config) *site.Generator {
	g := site.New(cfg.Title, cfg.DocsDir, cfg.OutputDir, cfg.Nav)
	g.Include = cfg.Include
	g.Exclude = cfg.Exclude
	g.Reporter = progress.NewReporter()
	return g
}
