// Package split implements the Splitter interface.
// Raw pasted text is divided into paragraphs on blank-line boundaries;
// single newlines inside a paragraph are kept for the list classifier.
package split

import (
	"regexp"
	"strings"
)

// blankLine matches one or more blank or whitespace-only lines between two
// non-blank lines.
var blankLine = regexp.MustCompile(`\n\s*\n`)

// ParagraphSplitter splits text on blank lines.
type ParagraphSplitter struct{}

// New creates a ParagraphSplitter.
func New() *ParagraphSplitter {
	return &ParagraphSplitter{}
}

// Split returns the trimmed, non-empty paragraphs of text in input order.
func (s *ParagraphSplitter) Split(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var paragraphs []string
	for _, segment := range blankLine.Split(text, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		paragraphs = append(paragraphs, segment)
	}
	return paragraphs
}
