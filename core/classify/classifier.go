// Package classify implements the Classifier interface.
// It decides the semantic role of a single paragraph using an ordered
// list of pattern rules.
package classify

import "github.com/gaurav-prasanna/descpipe/core"

// RuleClassifier evaluates rules top to bottom and returns on first match.
type RuleClassifier struct {
	rules []Rule
}

// New creates a RuleClassifier. With no rules it uses DefaultRules.
func New(rules ...Rule) *RuleClassifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &RuleClassifier{rules: rules}
}

// Classify returns exactly one block for the paragraph. A paragraph no rule
// accepts falls back to a plain paragraph, so classification always terminates.
func (c *RuleClassifier) Classify(paragraph string) core.Block {
	block, _ := c.ClassifyNamed(paragraph)
	return block
}

// ClassifyNamed is Classify plus the name of the rule that matched.
func (c *RuleClassifier) ClassifyNamed(paragraph string) (core.Block, string) {
	for _, rule := range c.rules {
		if rule.Match(paragraph) {
			return rule.Build(paragraph), rule.Name
		}
	}
	return core.Paragraph(paragraph), "fallback"
}
