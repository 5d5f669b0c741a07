package site

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/docweave/docweave/internal/nav"
	"github.com/docweave/docweave/internal/walker"
)

// SearchEntry represents a single searchable page in the documentation.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// NavIndex is the nav.json payload: the flattened page sequence stamped
// with the build it belongs to.
type NavIndex struct {
	BuildID string         `json:"build_id"`
	Title   string         `json:"title"`
	Pages   []nav.FlatPage `json:"pages"`
}

// BuildSearchIndex reads the walked markdown files and builds a search
// index. Entry paths are the generated HTML paths.
func BuildSearchIndex(files []walker.FileInfo) ([]SearchEntry, error) {
	var entries []SearchEntry
	for _, f := range files {
		entry, err := parseMarkdownForSearch(f.Path, f.RelPath)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// parseMarkdownForSearch extracts title, summary, and content from a
// markdown file. The summary is the first non-heading paragraph line.
func parseMarkdownForSearch(filePath, relPath string) (SearchEntry, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return SearchEntry{}, err
	}
	defer f.Close()

	entry := SearchEntry{
		Path: HTMLPathForPage(PathForSource(relPath)),
	}

	scanner := bufio.NewScanner(f)
	var lines []string
	foundTitle := false
	foundSummary := false

	for scanner.Scan() {
		line := scanner.Text()
		lines = append(lines, line)

		if !foundTitle && strings.HasPrefix(line, "# ") {
			entry.Title = strings.TrimPrefix(line, "# ")
			foundTitle = true
			continue
		}

		if foundTitle && !foundSummary && strings.TrimSpace(line) != "" && !strings.HasPrefix(line, "#") {
			entry.Summary = strings.TrimSpace(line)
			foundSummary = true
		}
	}

	if err := scanner.Err(); err != nil {
		return SearchEntry{}, err
	}

	// Full content for search, with blank lines dropped and truncated to a
	// reasonable size.
	var cleanLines []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		cleanLines = append(cleanLines, l)
	}
	content := strings.Join(cleanLines, " ")
	if len(content) > 2000 {
		content = content[:2000]
	}
	entry.Content = content

	if entry.Title == "" {
		entry.Title = strings.TrimSuffix(filepath.Base(relPath), ".md")
	}

	return entry, nil
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// WriteNavIndex writes nav.json to the given path.
func WriteNavIndex(idx NavIndex, outputPath string) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
