// Package textify implements the Textifier interface.
// It converts an extracted HTML fragment into Markdown, whose '#' headings
// and '- ' bullets are the plain-text cues the classifier reads.
package textify

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownTextifier converts HTML to Markdown using html-to-markdown.
type MarkdownTextifier struct{}

// New creates a MarkdownTextifier.
func New() *MarkdownTextifier {
	return &MarkdownTextifier{}
}

// Textify converts an HTML fragment into plain text.
func (t *MarkdownTextifier) Textify(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
