// Package render — default template.
// A fixed three-section layout (about, requirements, benefits) built from
// separate form fields. Unlike HTML, every value here is escaped.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/classify"
)

const defaultAboutHeading = "About"

// DefaultTemplate renders the about text as an escaped paragraph with line
// breaks, then the requirements and benefits as escaped lists. About text
// is trimmed, and list lines that are blank once the bullet marker is
// stripped are dropped. Sections left with nothing are omitted.
func DefaultTemplate(f core.TemplateFields, d core.Domain) string {
	var b strings.Builder
	openContainer(&b, d.Class)

	about := strings.TrimSpace(strings.ReplaceAll(f.About, "\r\n", "\n"))
	if about != "" {
		heading := d.AboutHeading
		if heading == "" {
			heading = defaultAboutHeading
		}
		fmt.Fprintf(&b, "<h2>%s</h2><p>%s</p>", html.EscapeString(heading), nl2br(html.EscapeString(about)))
	}

	writeTemplateList(&b, "Requirements:", f.Requirements)
	writeTemplateList(&b, "Benefits:", f.Benefits)

	b.WriteString(containerClose)
	return b.String()
}

func writeTemplateList(b *strings.Builder, label, text string) {
	items := templateItems(text)
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "<h3>%s</h3><ul>", label)
	for _, item := range items {
		fmt.Fprintf(b, "<li>%s</li>", html.EscapeString(item))
	}
	b.WriteString("</ul>")
}

// templateItems splits a field into list items, one per non-blank line,
// with a leading bullet marker removed.
func templateItems(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		item := classify.StripBullet(strings.TrimSpace(line))
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func nl2br(s string) string {
	return strings.ReplaceAll(s, "\n", "<br />\n")
}
