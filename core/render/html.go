// Package render provides output renderers for the descpipe pipeline.
// This file implements the HTML renderer used for pasted plain text.
//
// Block text is inserted verbatim, without escaping, so fragments of
// markup a user pasted survive. Output must go through a sanitizer before
// it is displayed as trusted HTML.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/gaurav-prasanna/descpipe/core"
)

const containerClose = "</div>"

// HTMLRenderer renders classified blocks as an HTML fragment.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render wraps the blocks in a container classed after meta.Domain.
func (r *HTMLRenderer) Render(blocks []core.Block, meta core.Metadata) ([]byte, error) {
	return []byte(HTML(blocks, meta.Domain.Class)), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// HTML renders blocks in order inside a single container element.
// An empty block slice yields an empty container.
func HTML(blocks []core.Block, class string) string {
	var b strings.Builder
	openContainer(&b, class)
	for _, block := range blocks {
		writeBlock(&b, block)
	}
	b.WriteString(containerClose)
	return b.String()
}

// Wrap places already-rendered HTML inside the container element.
func Wrap(inner, class string) string {
	var b strings.Builder
	openContainer(&b, class)
	b.WriteString(inner)
	b.WriteString(containerClose)
	return b.String()
}

func openContainer(b *strings.Builder, class string) {
	if class == "" {
		b.WriteString("<div>")
		return
	}
	fmt.Fprintf(b, `<div class="%s">`, html.EscapeString(class))
}

func writeBlock(b *strings.Builder, block core.Block) {
	switch block.Kind {
	case core.KindHeading:
		fmt.Fprintf(b, "<h%d>%s</h%d>", block.Level, block.Text, block.Level)
	case core.KindSectionLabel:
		fmt.Fprintf(b, "<h3>%s</h3>", block.Text)
	case core.KindBulletList:
		b.WriteString("<ul>")
		for _, item := range block.Items {
			fmt.Fprintf(b, "<li>%s</li>", item)
		}
		b.WriteString("</ul>")
	default:
		fmt.Fprintf(b, "<p>%s</p>", block.Text)
	}
}
