package site

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/docweave/docweave/internal/nav"
	"github.com/docweave/docweave/internal/progress"
	"github.com/docweave/docweave/internal/walker"
)

// Generator converts a markdown tree plus an authored nav outline into a
// static HTML site.
type Generator struct {
	Title     string
	DocsDir   string
	OutputDir string
	Outline   nav.Outline
	Include   []string
	Exclude   []string

	// Reporter receives per-page progress. Nil means no reporting.
	Reporter progress.Reporter

	// Rand drives the next-steps sampling. Nil means time-seeded.
	Rand *rand.Rand
}

// BuildResult describes one completed site build.
type BuildResult struct {
	BuildID     string // uuid identifying this build, stamped into nav.json
	PageCount   int    // pages written, outline and orphans combined
	Fingerprint string // walker fingerprint of the markdown sources
}

// New returns a Generator for the given site.
func New(title, docsDir, outputDir string, outline nav.Outline) *Generator {
	return &Generator{
		Title:     title,
		DocsDir:   docsDir,
		OutputDir: outputDir,
		Outline:   outline,
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title         string
	SiteTitle     string
	Path          string
	BuildID       string
	Content       template.HTML
	SidebarHTML   template.HTML
	NextStepsHTML template.HTML
	BasePath      string
}

// Generate builds the full static site. Every page in the outline must have
// a markdown source; markdown files absent from the outline are still
// rendered and reachable through search.
func (g *Generator) Generate() (*BuildResult, error) {
	if err := g.Outline.Validate(); err != nil {
		return nil, err
	}
	pages := nav.Flatten(g.Outline)

	files, err := walker.Walk(walker.WalkerConfig{
		RootDir: g.DocsDir,
		Include: g.Include,
		Exclude: g.Exclude,
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", g.DocsDir)
	}

	// Index sources by relative path and check outline coverage.
	sources := make(map[string]walker.FileInfo, len(files))
	for _, f := range files {
		sources[f.RelPath] = f
	}
	for _, p := range pages {
		if _, ok := sources[SourceForPath(p.Path)]; !ok {
			return nil, fmt.Errorf("nav page %s: no markdown source at %s", p.Path, SourceForPath(p.Path))
		}
	}

	// Orphans: markdown with no outline entry. Rendered, searchable, but
	// not part of the page sequence.
	var orphans []walker.FileInfo
	outlined := make(map[string]bool, len(pages))
	for _, p := range pages {
		outlined[SourceForPath(p.Path)] = true
	}
	for _, f := range files {
		if !outlined[f.RelPath] {
			orphans = append(orphans, f)
		}
	}

	rnd := g.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	result := &BuildResult{
		BuildID:     uuid.NewString(),
		Fingerprint: walker.Fingerprint(files),
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, err
	}

	// Static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return nil, err
	}

	// Search index over everything we walked.
	entries, err := BuildSearchIndex(files)
	if err != nil {
		return nil, fmt.Errorf("building search index: %w", err)
	}
	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return nil, fmt.Errorf("writing search index: %w", err)
	}

	// nav.json: the flattened sequence plus the build ID, consumed by the
	// client router and the live-reload script.
	if err := WriteNavIndex(NavIndex{BuildID: result.BuildID, Title: g.Title, Pages: pages},
		filepath.Join(g.OutputDir, "nav.json")); err != nil {
		return nil, fmt.Errorf("writing nav index: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	total := len(pages) + len(orphans)
	if g.Reporter != nil {
		g.Reporter.Start(total)
		defer g.Reporter.Finish()
	}

	done := 0
	for _, p := range pages {
		if err := g.renderPage(md, tmpl, pages, p.Path, p.Label, result.BuildID, rnd); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", p.Path, err)
		}
		done++
		if g.Reporter != nil {
			g.Reporter.Update(done, p.Path)
		}
	}
	for _, f := range orphans {
		path := PathForSource(f.RelPath)
		if err := g.renderPage(md, tmpl, pages, path, "", result.BuildID, rnd); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", f.RelPath, err)
		}
		done++
		if g.Reporter != nil {
			g.Reporter.Update(done, path)
		}
	}

	result.PageCount = total
	return result, nil
}

// renderPage converts a single page to HTML. label may be empty for orphan
// pages; the markdown H1 (or the file name) fills in.
func (g *Generator) renderPage(md goldmark.Markdown, tmpl *template.Template, pages []nav.FlatPage, path, label, buildID string, rnd *rand.Rand) error {
	srcPath := filepath.Join(g.DocsDir, filepath.FromSlash(SourceForPath(path)))
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	var htmlBuf bytes.Buffer
	if err := md.Convert(content, &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}
	htmlContent := rewriteMDLinks(htmlBuf.String())

	htmlRelPath := HTMLPathForPage(path)
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(htmlRelPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	// Relative prefix back to the site root for CSS/JS references.
	depth := strings.Count(htmlRelPath, "/")
	basePath := strings.Repeat("../", depth)

	title := label
	if title == "" {
		title = extractTitle(string(content), srcPath)
	}

	data := pageData{
		Title:         title,
		SiteTitle:     g.Title,
		Path:          path,
		BuildID:       buildID,
		Content:       template.HTML(htmlContent),
		SidebarHTML:   template.HTML(RenderSidebar(g.Outline, path, basePath)),
		NextStepsHTML: template.HTML(RenderNextSteps(nav.Suggest(pages, path, rnd), basePath)),
		BasePath:      basePath,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, data)
}

// SourceForPath maps a site path to its markdown source:
// "/" -> "index.md", "/guides/config" -> "guides/config.md".
func SourceForPath(path string) string {
	if path == "/" {
		return "index.md"
	}
	return strings.TrimPrefix(path, "/") + ".md"
}

// PathForSource is the inverse of SourceForPath.
func PathForSource(relPath string) string {
	p := strings.TrimSuffix(relPath, ".md")
	if p == "index" {
		return "/"
	}
	return "/" + p
}

// HTMLPathForPage maps a site path to its output file:
// "/" -> "index.html", "/guides/config" -> "guides/config.html".
func HTMLPathForPage(path string) string {
	if path == "/" {
		return "index.html"
	}
	return strings.TrimPrefix(path, "/") + ".html"
}

// extractTitle pulls the first # heading from markdown content, or falls
// back to the file name.
func extractTitle(content, srcPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return strings.TrimSuffix(filepath.Base(srcPath), ".md")
}

// rewriteMDLinks changes .md links in rendered HTML to .html links so
// relative links between markdown files keep working on the site.
func rewriteMDLinks(content string) string {
	result := strings.ReplaceAll(content, `.md"`, `.html"`)
	result = strings.ReplaceAll(result, `.md#`, `.html#`)
	return result
}
