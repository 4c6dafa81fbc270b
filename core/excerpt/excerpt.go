// Package excerpt builds short teaser text for listing cards.
// Words are whitespace-delimited; headings and labels are skipped so the
// teaser starts with body copy.
package excerpt

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/descpipe/core"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

const (
	defaultMaxWords = 40
	ellipsis        = "…"
)

// Excerpter cuts block text down to a fixed number of words.
type Excerpter struct {
	MaxWords int
}

// New creates an Excerpter. Defaults to 40 words if maxWords <= 0.
func New(maxWords int) *Excerpter {
	if maxWords <= 0 {
		maxWords = defaultMaxWords
	}
	return &Excerpter{MaxWords: maxWords}
}

// Excerpt returns the first MaxWords words of the paragraph and list text,
// with an ellipsis appended when anything was cut.
func (e *Excerpter) Excerpt(blocks []core.Block) string {
	var words []string
	for _, block := range blocks {
		switch block.Kind {
		case core.KindParagraph:
			words = append(words, strings.Fields(block.Text)...)
		case core.KindBulletList:
			for _, item := range block.Items {
				words = append(words, strings.Fields(item)...)
			}
		}
		if len(words) > e.MaxWords {
			break
		}
	}

	return e.cut(words)
}

// FromHTML builds the excerpt from rendered HTML, skipping heading text.
// It is used where no block list exists, such as goldmark output.
func (e *Excerpter) FromHTML(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var words []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().EachWithBreak(func(_ int, child *goquery.Selection) bool {
			switch {
			case goquery.NodeName(child) == "#text":
				words = append(words, strings.Fields(child.Text())...)
			case !child.Is(headingSelector):
				walk(child)
			}
			return len(words) <= e.MaxWords
		})
	}
	walk(doc.Find("body"))

	return e.cut(words), nil
}

func (e *Excerpter) cut(words []string) string {
	if len(words) <= e.MaxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:e.MaxWords], " ") + ellipsis
}
