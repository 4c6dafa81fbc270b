// Package render — JSON renderer.
// Builds a structured JSON document from classified blocks: the rendered
// HTML, a teaser excerpt, the blocks themselves and per-kind counts.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/descpipe/core"
	"github.com/gaurav-prasanna/descpipe/core/excerpt"
)

// Structure counts blocks by kind.
type Structure struct {
	Headings      int `json:"headings"`
	SectionLabels int `json:"section_labels"`
	Lists         int `json:"lists"`
	ListItems     int `json:"list_items"`
	Paragraphs    int `json:"paragraphs"`
}

// DescriptionJSON is the complete JSON output for one description.
type DescriptionJSON struct {
	Metadata  core.Metadata `json:"metadata"`
	HTML      string        `json:"html"`
	Excerpt   string        `json:"excerpt"`
	Blocks    []core.Block  `json:"blocks"`
	Structure Structure     `json:"structure"`
}

// JSONRenderer produces structured JSON output from blocks.
type JSONRenderer struct {
	excerpter *excerpt.Excerpter
}

// NewJSONRenderer creates a JSONRenderer whose excerpt is capped at
// excerptWords words.
func NewJSONRenderer(excerptWords int) *JSONRenderer {
	return &JSONRenderer{excerpter: excerpt.New(excerptWords)}
}

// Render converts blocks and metadata into the JSON document.
func (r *JSONRenderer) Render(blocks []core.Block, meta core.Metadata) ([]byte, error) {
	if blocks == nil {
		blocks = []core.Block{}
	}

	doc := DescriptionJSON{
		Metadata:  meta,
		HTML:      HTML(blocks, meta.Domain.Class),
		Excerpt:   r.excerpter.Excerpt(blocks),
		Blocks:    blocks,
		Structure: CountStructure(blocks),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// CountStructure tallies blocks per kind.
func CountStructure(blocks []core.Block) Structure {
	var s Structure
	for _, block := range blocks {
		switch block.Kind {
		case core.KindHeading:
			s.Headings++
		case core.KindSectionLabel:
			s.SectionLabels++
		case core.KindBulletList:
			s.Lists++
			s.ListItems += len(block.Items)
		default:
			s.Paragraphs++
		}
	}
	return s
}
