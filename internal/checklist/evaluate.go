package checklist

import "fmt"

// Evaluate runs the criteria check, alert rules and recommendation rules
// of the pathway against the answers. Unknown observation IDs are ignored.
func Evaluate(p *Pathway, a Answers) (*Outcome, error) {
	if err := checkValues(p, a); err != nil {
		return nil, err
	}

	out := &Outcome{
		CriteriaMet:     criteriaMet(p.Criteria, a),
		Alerts:          []string{},
		Recommendations: []string{},
	}
	if out.CriteriaMet {
		out.Status = p.Criteria.MetText
	} else {
		out.Status = p.Criteria.UnmetText
	}

	for _, r := range p.Alerts {
		if r.Fires(p, a) {
			out.Alerts = append(out.Alerts, r.Render(a))
		}
	}
	for _, r := range p.Rules {
		if r.Fires(p, a) {
			out.Recommendations = append(out.Recommendations, r.Render(a))
		}
	}
	return out, nil
}

func criteriaMet(c Criteria, a Answers) bool {
	if len(c.AllOf) == 0 {
		return false
	}
	for _, id := range c.AllOf {
		if !a.Observed.Has(id) {
			return false
		}
	}
	return true
}

// checkValues validates numeric answers whose dependency is satisfied.
// Values for questions whose dependency was answered no are ignored.
func checkValues(p *Pathway, a Answers) error {
	for _, q := range p.Questions() {
		if q.Kind != KindNumber || !Active(q, a) {
			continue
		}
		v, ok := a.Value(q.ID)
		if !ok {
			continue
		}
		if v < q.Min || v > q.Max {
			return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidAnswer, q.ID, q.Min, q.Max, v)
		}
	}
	return nil
}

// Active reports whether q should be asked given the answers so far.
func Active(q Question, a Answers) bool {
	return q.DependsOn == "" || a.Observed.Has(q.DependsOn)
}
