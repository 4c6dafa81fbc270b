// Package describe is the entry point for turning listing copy into HTML.
// It wires the splitter, classifier and HTML renderer together and exposes
// the default three-field template and the Markdown path.
//
// All functions are pure and safe for concurrent use.
package describe

import (
	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/classify"
	"github.com/gaurav-prasanna/descpipe/core/render"
	"github.com/gaurav-prasanna/descpipe/core/split"
)

// Normalizer turns raw pasted text into classified blocks.
type Normalizer struct {
	splitter   core.Splitter
	classifier core.Classifier
}

// New creates a Normalizer with the default splitter and rule set.
func New() *Normalizer {
	return NewWith(split.New(), classify.New())
}

// NewWith creates a Normalizer from explicit stages.
func NewWith(splitter core.Splitter, classifier core.Classifier) *Normalizer {
	return &Normalizer{splitter: splitter, classifier: classifier}
}

// Blocks classifies every paragraph of text, one block per paragraph,
// in input order.
func (n *Normalizer) Blocks(text string) []core.Block {
	paragraphs := n.splitter.Split(text)
	blocks := make([]core.Block, 0, len(paragraphs))
	for _, p := range paragraphs {
		blocks = append(blocks, n.classifier.Classify(p))
	}
	return blocks
}

// HTML normalizes text and renders it inside the domain's container.
func (n *Normalizer) HTML(text string, d core.Domain) string {
	return render.HTML(n.Blocks(text), d.Class)
}

var defaultNormalizer = New()

// FromPlainText rebuilds semantic HTML from unstructured text. It never
// fails; empty or whitespace-only input yields an empty container.
// Text is not escaped, so the result needs sanitizing before display.
func FromPlainText(text string, d core.Domain) string {
	return defaultNormalizer.HTML(text, d)
}

// DefaultTemplate renders the fixed about/requirements/benefits layout.
// Every field is escaped.
func DefaultTemplate(f core.TemplateFields, d core.Domain) string {
	return render.DefaultTemplate(f, d)
}
