package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/docweave/docweave/internal/nav"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Title != "Documentation" {
		t.Errorf("expected default title %q, got %q", "Documentation", cfg.Title)
	}
	if cfg.DocsDir != "docs" {
		t.Errorf("expected default docs_dir %q, got %q", "docs", cfg.DocsDir)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.docweave.yml")

	original := DefaultConfig()
	original.Title = "My Project"
	original.DocsDir = "manual"
	original.Port = 9000
	original.Include = []string{"**/*.md", "**/*.markdown"}
	original.Nav = nav.Outline{
		{Label: "Start", Items: []nav.Item{
			{Label: "Intro", Path: "/intro", Items: []nav.Item{
				{Label: "Install", Path: "/intro/install"},
			}},
		}},
	}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.DocsDir != original.DocsDir {
		t.Errorf("docs_dir: got %q, want %q", loaded.DocsDir, original.DocsDir)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Errorf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}

	pages := nav.Flatten(loaded.Nav)
	wantPaths := []string{"/intro", "/intro/install"}
	if len(pages) != len(wantPaths) {
		t.Fatalf("nav pages: got %d, want %d", len(pages), len(wantPaths))
	}
	for i, p := range pages {
		if p.Path != wantPaths[i] {
			t.Errorf("nav page %d: got %q, want %q", i, p.Path, wantPaths[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Title != "Documentation" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override the port via env var.
	os.Setenv("DOCWEAVE_PORT", "3000")
	defer os.Unsetenv("DOCWEAVE_PORT")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got %d, want 3000", loaded.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyTitle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Title = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty title")
	}
}

func TestValidateEmptyDocsDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DocsDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty docs_dir")
	}
}

func TestValidatePortRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateDuplicateNavPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nav = nav.Outline{
		{Label: "A", Items: []nav.Item{{Label: "X", Path: "/x"}}},
		{Label: "B", Items: []nav.Item{{Label: "Y", Path: "/x"}}},
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for duplicate nav path")
	}
}

func TestSeedOutline(t *testing.T) {
	out := SeedOutline([]string{"index.md", "getting-started.md", "guides/config.md"})
	if len(out) != 1 {
		t.Fatalf("sections = %d, want 1", len(out))
	}
	pages := nav.Flatten(out)
	wantPaths := []string{"/", "/getting-started", "/guides/config"}
	for i, p := range pages {
		if p.Path != wantPaths[i] {
			t.Errorf("page %d path = %q, want %q", i, p.Path, wantPaths[i])
		}
	}
	if pages[0].Label != "Home" {
		t.Errorf("index label = %q, want Home", pages[0].Label)
	}
	if pages[1].Label != "Getting Started" {
		t.Errorf("label = %q, want %q", pages[1].Label, "Getting Started")
	}
	if err := out.Validate(); err != nil {
		t.Errorf("seeded outline should validate, got: %v", err)
	}
}

func TestSeedOutlineEmpty(t *testing.T) {
	if out := SeedOutline(nil); out != nil {
		t.Errorf("SeedOutline(nil) = %v, want nil", out)
	}
}
