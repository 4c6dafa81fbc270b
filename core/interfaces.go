// Package core defines the pipeline interfaces and shared types for descpipe.
// Each stage of the pipeline is a small, testable interface.
package core

import "context"

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Metadata describes where a description came from and how it is rendered.
type Metadata struct {
	Source      string `json:"source"`
	Domain      Domain `json:"domain"`
	Title       string `json:"title,omitempty"`
	GeneratedAt string `json:"generated_at"` // ISO8601
}

// TemplateFields are the three inputs of the fixed-shape default template.
type TemplateFields struct {
	About        string `json:"about"`
	Requirements string `json:"requirements"`
	Benefits     string `json:"benefits"`
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor pulls the description fragment out of a full listing page.
type Extractor interface {
	Extract(html string) (string, error)
}

// Textifier turns an HTML fragment into plain text the classifier understands.
type Textifier interface {
	Textify(html string) (string, error)
}

// Splitter divides raw text into trimmed, non-empty paragraphs.
type Splitter interface {
	Split(text string) []string
}

// Classifier assigns exactly one semantic block to a paragraph.
type Classifier interface {
	Classify(paragraph string) Block
}

// Renderer converts classified blocks (and metadata) into a final output format.
type Renderer interface {
	Render(blocks []Block, meta Metadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
