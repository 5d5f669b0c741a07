package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/docweave/docweave/internal/nav"
)

// RenderSidebar renders the nav outline as the sidebar HTML: one block per
// section, items as links, child items nested one level. activePath marks
// the current page; basePath is the relative prefix back to the site root.
func RenderSidebar(outline nav.Outline, activePath, basePath string) string {
	var b strings.Builder
	for _, sec := range outline {
		fmt.Fprintf(&b, `<div class="nav-section"><span class="nav-section-label">%s</span>`+"\n", html.EscapeString(sec.Label))
		b.WriteString("<ul>\n")
		for _, item := range sec.Items {
			open := item.Path == activePath || hasActiveChild(item, activePath)
			writeNavLink(&b, item, activePath, basePath)
			if len(item.Items) > 0 {
				cls := "nav-children"
				if open {
					cls += " open"
				}
				fmt.Fprintf(&b, `<ul class="%s">`+"\n", cls)
				for _, child := range item.Items {
					writeNavLink(&b, child, activePath, basePath)
				}
				b.WriteString("</ul>\n")
			}
		}
		b.WriteString("</ul>\n</div>\n")
	}
	return b.String()
}

func hasActiveChild(item nav.Item, activePath string) bool {
	for _, child := range item.Items {
		if child.Path == activePath {
			return true
		}
	}
	return false
}

func writeNavLink(b *strings.Builder, item nav.Item, activePath, basePath string) {
	active := ""
	if item.Path == activePath {
		active = ` class="active"`
	}
	fmt.Fprintf(b, `<li><a href="%s"%s>%s</a></li>`+"\n", basePath+HTMLPathForPage(item.Path), active, html.EscapeString(item.Label))
}

// RenderNextSteps renders a suggestion list as the "Next steps" block shown
// at the bottom of each page. An empty list renders nothing.
func RenderNextSteps(suggestions []nav.FlatPage, basePath string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<nav class="next-steps"><h2>Next steps</h2><ul>` + "\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`+"\n", basePath+HTMLPathForPage(s.Path), html.EscapeString(s.Label))
	}
	b.WriteString("</ul></nav>\n")
	return b.String()
}
