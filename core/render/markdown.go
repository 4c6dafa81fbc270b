// Package render — plain-text renderer.
// Re-emits classified blocks in the same lightweight dialect the classifier
// reads: '#' headings, "Label:" lines, '- ' items and plain paragraphs.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/descpipe/core"
)

// MarkdownRenderer writes blocks back out as plain text. Feeding its output
// through the normalizer again reproduces the same headings and list items.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the plain-text form of the blocks.
func (r *MarkdownRenderer) Render(blocks []core.Block, meta core.Metadata) ([]byte, error) {
	return []byte(PlainText(blocks)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// PlainText joins the plain-text form of each block with blank lines.
func PlainText(blocks []core.Block) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		switch block.Kind {
		case core.KindHeading:
			parts = append(parts, strings.Repeat("#", block.Level)+" "+block.Text)
		case core.KindBulletList:
			lines := make([]string, len(block.Items))
			for i, item := range block.Items {
				lines[i] = "- " + item
			}
			parts = append(parts, strings.Join(lines, "\n"))
		default:
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}
