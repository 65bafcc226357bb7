package checklist

import (
	"fmt"
	"strings"
)

// Validate checks the pathway definition for structural problems.
// Returns a combined error describing all problems found, or nil if valid.
func (p *Pathway) Validate() error {
	var errs []string

	ids := make(map[string]bool)
	kinds := make(map[string]QuestionKind)
	for _, q := range p.Questions() {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question %q has an empty ID", q.Label))
		}
		if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate ID: %q", q.ID))
		}
		ids[q.ID] = true
		kinds[q.ID] = q.Kind

		switch q.Kind {
		case KindMultiSelect:
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
			}
			for _, o := range q.Options {
				if ids[o.ID] {
					errs = append(errs, fmt.Sprintf("duplicate ID: %q", o.ID))
				}
				ids[o.ID] = true
			}
		case KindNumber:
			if q.Min > q.Max {
				errs = append(errs, fmt.Sprintf("question %q: Min %d > Max %d", q.ID, q.Min, q.Max))
			}
		}
	}

	for _, q := range p.Questions() {
		if q.DependsOn != "" && kinds[q.DependsOn] != KindYesNo {
			errs = append(errs, fmt.Sprintf("question %q depends on %q, which is not a yes/no question", q.ID, q.DependsOn))
		}
	}

	if len(p.Criteria.AllOf) == 0 {
		errs = append(errs, "criteria list is empty")
	}
	for _, id := range p.Criteria.AllOf {
		if k, ok := kinds[id]; !ok || k != KindYesNo {
			errs = append(errs, fmt.Sprintf("criterion %q is not a yes/no question", id))
		}
	}

	rules := append(append([]Rule{}, p.Alerts...), p.Rules...)
	for _, r := range rules {
		switch r.Kind {
		case RuleHas, RuleLacks:
			if !ids[r.Target] {
				errs = append(errs, fmt.Sprintf("rule %q references unknown ID %q", r.Text, r.Target))
			}
		case RuleAnyOf:
			if kinds[r.Target] != KindMultiSelect {
				errs = append(errs, fmt.Sprintf("rule %q references %q, which is not a multi-select question", r.Text, r.Target))
			}
		}
		if r.ValueFrom != "" {
			if k, ok := kinds[r.ValueFrom]; !ok || k != KindNumber {
				errs = append(errs, fmt.Sprintf("rule %q takes its value from %q, which is not a number question", r.Text, r.ValueFrom))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("pathway %s validation failed:\n  %s", p.ID, strings.Join(errs, "\n  "))
	}
	return nil
}
