package nav

import (
	"fmt"
	"strings"
)

// Section is a named grouping of pages in the navigation outline. Sections
// organize the sidebar but are never themselves addressable.
type Section struct {
	Label string `yaml:"label" koanf:"label" json:"label"`
	Items []Item `yaml:"items" koanf:"items" json:"items"`
}

// Item is a single navigable page. An item may own one level of child items,
// shown as sub-navigation under it.
type Item struct {
	Label string `yaml:"label" koanf:"label" json:"label"`
	Path  string `yaml:"path" koanf:"path" json:"path"`
	Items []Item `yaml:"items,omitempty" koanf:"items" json:"items,omitempty"`
}

// Outline is the authored navigation hierarchy: the single source of truth
// for page order. It is built once from configuration and never mutated.
type Outline []Section

// FlatPage is the flattened projection of an Item, retaining only what
// sequencing and lookup need.
type FlatPage struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Flatten walks the outline in pre-order — section by section, item by item,
// each item immediately followed by its children — and returns the ordered
// page sequence. No sorting, filtering, or deduplication is applied.
func Flatten(o Outline) []FlatPage {
	var pages []FlatPage
	for _, sec := range o {
		for _, item := range sec.Items {
			pages = append(pages, FlatPage{Label: item.Label, Path: item.Path})
			for _, child := range item.Items {
				pages = append(pages, FlatPage{Label: child.Label, Path: child.Path})
			}
		}
	}
	return pages
}

// PageIndex returns the index of the first page whose path exactly equals
// path, or -1 if there is no match.
func PageIndex(pages []FlatPage, path string) int {
	for i, p := range pages {
		if p.Path == path {
			return i
		}
	}
	return -1
}

// CleanPath normalizes a browser-supplied path for outline lookup: the query
// string, fragment, and any trailing slash are stripped. The root path "/"
// is kept as is. Outline paths themselves are stored already normalized, so
// lookups after CleanPath are plain string equality.
func CleanPath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	if p == "" {
		return "/"
	}
	return p
}

// Validate checks the invariants the rest of the system relies on: every
// item has a label and a slash-rooted path, and no path appears twice once
// the outline is flattened. Duplicate paths would make current-page lookup
// ambiguous.
func (o Outline) Validate() error {
	seen := make(map[string]string)
	for si, sec := range o {
		if sec.Label == "" {
			return fmt.Errorf("nav section %d: label is required", si)
		}
		for _, item := range sec.Items {
			if err := validateItem(sec.Label, item, seen); err != nil {
				return err
			}
			for _, child := range item.Items {
				if len(child.Items) > 0 {
					return fmt.Errorf("nav item %q: child %q may not have children (one level of nesting only)", item.Path, child.Path)
				}
				if err := validateItem(sec.Label, child, seen); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateItem(section string, item Item, seen map[string]string) error {
	if item.Label == "" {
		return fmt.Errorf("nav section %q: item %q: label is required", section, item.Path)
	}
	if item.Path == "" {
		return fmt.Errorf("nav section %q: item %q: path is required", section, item.Label)
	}
	if !strings.HasPrefix(item.Path, "/") {
		return fmt.Errorf("nav item %q: path must start with /", item.Path)
	}
	if item.Path != CleanPath(item.Path) {
		return fmt.Errorf("nav item %q: path must be normalized (no trailing slash, query, or fragment)", item.Path)
	}
	if prev, ok := seen[item.Path]; ok {
		return fmt.Errorf("nav item %q: duplicate path (already used in section %q)", item.Path, prev)
	}
	seen[item.Path] = section
	return nil
}
