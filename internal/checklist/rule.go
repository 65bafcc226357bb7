package checklist

import (
	"fmt"
	"strings"
)

// RuleKind tags the predicate a Rule applies.
type RuleKind int

const (
	RuleAlways RuleKind = iota // Always fires
	RuleHas                    // Fires when Target was observed
	RuleLacks                  // Fires when Target was not observed
	RuleAnyOf                  // Fires when any option of multi-select Target was observed
)

// Rule pairs a predicate with a fixed recommendation text.
type Rule struct {
	Kind   RuleKind
	Target string
	Text   string

	// ValueFrom names a numeric answer substituted into Text via %d.
	ValueFrom string
}

// Always returns a rule that fires unconditionally.
func Always(text string) Rule { return Rule{Kind: RuleAlways, Text: text} }

// Has returns a rule that fires when feature was observed.
func Has(feature, text string) Rule { return Rule{Kind: RuleHas, Target: feature, Text: text} }

// Lacks returns a rule that fires when feature was not observed.
func Lacks(feature, text string) Rule { return Rule{Kind: RuleLacks, Target: feature, Text: text} }

// AnyOf returns a rule that fires when any option of the multi-select
// question was selected.
func AnyOf(question, text string) Rule { return Rule{Kind: RuleAnyOf, Target: question, Text: text} }

// WithValue substitutes the numeric answer id into the rule text.
func (r Rule) WithValue(id string) Rule {
	r.ValueFrom = id
	return r
}

// Fires reports whether the rule's predicate holds for the answers.
func (r Rule) Fires(p *Pathway, a Answers) bool {
	switch r.Kind {
	case RuleAlways:
		return true
	case RuleHas:
		return a.Observed.Has(r.Target)
	case RuleLacks:
		return !a.Observed.Has(r.Target)
	case RuleAnyOf:
		q, ok := p.Question(r.Target)
		if !ok {
			return false
		}
		for _, o := range q.Options {
			if a.Observed.Has(o.ID) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Render returns the rule text with any numeric answer substituted.
func (r Rule) Render(a Answers) string {
	if r.ValueFrom == "" {
		return r.Text
	}
	if v, ok := a.Value(r.ValueFrom); ok {
		return fmt.Sprintf(r.Text, v)
	}
	return strings.Replace(r.Text, "%d", "n/a", 1)
}
