package core

import "fmt"

// Kind is the semantic role assigned to a paragraph.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindSectionLabel
	KindBulletList
)

var kindNames = map[Kind]string{
	KindParagraph:    "paragraph",
	KindHeading:      "heading",
	KindSectionLabel: "section_label",
	KindBulletList:   "bullet_list",
}

// String returns the lowercase name used in JSON output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown block kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown block kind %q", string(text))
}

// Block is one classified paragraph. Level is set for headings only,
// Items for bullet lists only, Text for everything else.
type Block struct {
	Kind  Kind     `json:"kind"`
	Level int      `json:"level,omitempty"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Heading builds a heading block.
func Heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

// SectionLabel builds a section label block. The trailing colon is kept.
func SectionLabel(text string) Block {
	return Block{Kind: KindSectionLabel, Text: text}
}

// BulletList builds a list block.
func BulletList(items []string) Block {
	return Block{Kind: KindBulletList, Items: items}
}

// Paragraph builds a plain paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}
