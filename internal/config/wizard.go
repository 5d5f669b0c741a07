package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/docweave/docweave/internal/nav"
)

// docsDirCandidates are directory names checked for existing markdown when
// proposing a docs_dir default.
var docsDirCandidates = []string{"docs", "doc", "documentation", "content"}

// detectDocsDir returns the first candidate directory that exists and
// contains markdown, or the package default when none does.
func detectDocsDir() string {
	for _, dir := range docsDirCandidates {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if len(findMarkdown(dir)) > 0 {
			return dir
		}
	}
	return DefaultConfig().DocsDir
}

// findMarkdown returns the relative slash paths of all .md files under dir.
func findMarkdown(dir string) []string {
	var paths []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			if rel, relErr := filepath.Rel(dir, path); relErr == nil {
				paths = append(paths, filepath.ToSlash(rel))
			}
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. The nav outline is seeded from the markdown files found
// in the chosen docs directory; the caller is expected to rearrange it.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to docweave! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titleDefault := "Documentation"
	if wd, err := os.Getwd(); err == nil && filepath.Base(wd) != "." {
		titleDefault = filepath.Base(wd)
	}
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: titleDefault,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Title = title

	// 2. Docs directory.
	docsPrompt := promptui.Prompt{
		Label:   "Markdown directory",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir prompt: %w", err)
	}
	cfg.DocsDir = docsDir

	// 3. Dev server port.
	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	cfg.Nav = SeedOutline(findMarkdown(cfg.DocsDir))
	if len(cfg.Nav) == 0 {
		fmt.Printf("\nNo markdown found under %s yet; starting with an empty outline.\n", cfg.DocsDir)
	} else {
		fmt.Printf("\nSeeded the nav outline with %d pages. Edit docweave.yml to rearrange.\n", len(nav.Flatten(cfg.Nav)))
	}

	return cfg, nil
}

// SeedOutline builds a starter outline from a list of relative markdown
// paths: one section, one item per file, in path order. index.md maps to the
// root path.
func SeedOutline(mdPaths []string) nav.Outline {
	if len(mdPaths) == 0 {
		return nil
	}
	sec := nav.Section{Label: "Documentation"}
	for _, p := range mdPaths {
		sec.Items = append(sec.Items, nav.Item{
			Label: labelForFile(p),
			Path:  pathForFile(p),
		})
	}
	return nav.Outline{sec}
}

// pathForFile maps a markdown source path to its site path:
// "index.md" -> "/", "guides/config.md" -> "/guides/config".
func pathForFile(mdPath string) string {
	p := strings.TrimSuffix(mdPath, ".md")
	if p == "index" {
		return "/"
	}
	return "/" + p
}

// labelForFile turns a file name into a display label: "getting-started.md"
// becomes "Getting Started".
func labelForFile(mdPath string) string {
	name := strings.TrimSuffix(filepath.Base(mdPath), ".md")
	if name == "index" {
		return "Home"
	}
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
