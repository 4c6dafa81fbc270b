// Package classify — classification rules.
// Each rule pairs a matcher with a block constructor. Rules are evaluated
// in slice order and the first match wins, so order is part of the contract.
package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gaurav-prasanna/descpipe/core"
)

// maxAllCapsRunes is the exclusive upper bound for an all-caps heading.
const maxAllCapsRunes = 100

var (
	headingRegex      = regexp.MustCompile(`^(#+)[ \t]*([^\n]*)`)
	allCapsRegex      = regexp.MustCompile(`^\p{Lu}[\p{Lu}\s]+$`)
	sectionLabelRegex = regexp.MustCompile(`^\p{Lu}[^:]+:$`)
	bulletLineRegex   = regexp.MustCompile(`(?m)^[ \t]*[-•*]`)
	bulletMarkerRegex = regexp.MustCompile(`^[-•*]\s*`)
)

// Rule is one matcher/constructor pair.
type Rule struct {
	Name  string
	Match func(paragraph string) bool
	Build func(paragraph string) core.Block
}

// DefaultRules returns the rule set in precedence order:
// markdown heading, all-caps heading, section label, bullet list, paragraph.
func DefaultRules() []Rule {
	return []Rule{
		HeadingRule(),
		AllCapsRule(),
		SectionLabelRule(),
		BulletListRule(),
		ParagraphRule(),
	}
}

// HeadingRule matches a paragraph whose first line is a run of '#' followed
// by text on that same line. The level is the length of the leading run; it
// is not clamped.
func HeadingRule() Rule {
	return Rule{
		Name: "heading",
		Match: func(p string) bool {
			_, _, ok := parseHeading(p)
			return ok
		},
		Build: func(p string) core.Block {
			level, text, _ := parseHeading(p)
			return core.Heading(level, text)
		},
	}
}

func parseHeading(p string) (int, string, bool) {
	m := headingRegex.FindStringSubmatch(p)
	if m == nil || strings.TrimSpace(m[2]) == "" {
		return 0, "", false
	}
	// Text starts on the marker line; later lines of the paragraph follow it.
	return len(m[1]), strings.TrimSpace(p[len(m[1]):]), true
}

// AllCapsRule matches short paragraphs written entirely in uppercase letters
// and whitespace. They become level-2 headings with the text untouched.
func AllCapsRule() Rule {
	return Rule{
		Name: "all-caps",
		Match: func(p string) bool {
			return allCapsRegex.MatchString(p) && utf8.RuneCountInString(p) < maxAllCapsRunes
		},
		Build: func(p string) core.Block {
			return core.Heading(2, p)
		},
	}
}

// SectionLabelRule matches "Label:" paragraphs: an uppercase first letter,
// no colon until the final character.
func SectionLabelRule() Rule {
	return Rule{
		Name:  "section-label",
		Match: sectionLabelRegex.MatchString,
		Build: core.SectionLabel,
	}
}

// BulletListRule matches when any line starts with '-', '•' or '*'.
// Every non-empty line becomes an item; one leading marker is stripped.
func BulletListRule() Rule {
	return Rule{
		Name:  "bullet-list",
		Match: bulletLineRegex.MatchString,
		Build: func(p string) core.Block {
			return core.BulletList(listItems(p))
		},
	}
}

// ParagraphRule matches everything.
func ParagraphRule() Rule {
	return Rule{
		Name:  "paragraph",
		Match: func(string) bool { return true },
		Build: core.Paragraph,
	}
}

func listItems(p string) []string {
	lines := strings.Split(p, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, StripBullet(line))
	}
	return items
}

// StripBullet removes one leading bullet marker and the whitespace after it.
func StripBullet(line string) string {
	return bulletMarkerRegex.ReplaceAllString(line, "")
}
