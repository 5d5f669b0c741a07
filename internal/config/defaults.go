package config

// DefaultExcludes are glob patterns skipped when collecting markdown sources.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"drafts/**",
	"**/README.md",
}

// DefaultConfig returns a Config with sensible defaults. The nav outline is
// intentionally empty; `docweave init` seeds it from the markdown it finds.
func DefaultConfig() *Config {
	return &Config{
		Title:     "Documentation",
		DocsDir:   "docs",
		OutputDir: "site",
		BaseURL:   "/",
		Port:      8080,
		Include:   []string{"**/*.md"},
		Exclude:   DefaultExcludes,
	}
}
