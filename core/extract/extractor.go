// Package extract implements the Extractor interface.
// It isolates the description of a job or product listing page by:
//  1. Removing noise elements (scripts, navigation, forms, media)
//  2. Picking the most specific description container available
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before extraction.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"img", "picture", "figure", "figcaption",
	"iframe", "video", "audio",
	"svg", "canvas",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
	".apply-button", ".share", ".related-jobs", ".related-products",
}

// containerSelectors are tried in order; the first non-empty match wins.
var containerSelectors = []string{
	`[itemprop="description"]`,
	".job-description",
	".product-description",
	".description",
	"main",
	"article",
	"body",
}

// HTMLExtractor returns the description fragment of a listing page.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes raw page HTML and returns the inner HTML of the best
// description container with noise removed.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, sel := range containerSelectors {
		content := doc.Find(sel).First()
		if content.Length() == 0 || strings.TrimSpace(content.Text()) == "" {
			continue
		}
		result, err := content.Html()
		if err != nil {
			return "", fmt.Errorf("serializing content: %w", err)
		}
		return result, nil
	}

	return "", fmt.Errorf("no description container found in HTML")
}

// Title returns the page's first <h1>, falling back to <title>.
func Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
