package checklist

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field is one key/value line of an evaluation summary. Value is a bool
// for yes/no questions, a []string of option labels for multi-select
// questions, an int for answered numbers and "" otherwise.
type Field struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Text renders the value for display.
func (f Field) Text() string {
	switch v := f.Value.(type) {
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case []string:
		return strings.Join(v, ", ")
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return ""
	}
}

// Summary documents the inputs and conclusions of one evaluation.
type Summary struct {
	ID              string    `json:"id"`
	Pathway         string    `json:"pathway"`
	CreatedAt       time.Time `json:"created_at"`
	Status          string    `json:"status"`
	Alerts          []string  `json:"alerts"`
	Fields          []Field   `json:"fields"`
	Recommendations []string  `json:"recommendations"`
}

// Timestamp returns CreatedAt in ISO-8601 with second precision.
func (s *Summary) Timestamp() string {
	return s.CreatedAt.Format("2006-01-02T15:04:05")
}

// Summarize builds the summary for an evaluated pathway. Fields follow
// question order, preceded by the pathway label.
func Summarize(p *Pathway, a Answers, out *Outcome, now time.Time) *Summary {
	s := &Summary{
		ID:        uuid.NewString(),
		Pathway:   p.ID,
		CreatedAt: now.Truncate(time.Second),
		Fields:    []Field{{Key: "Pathway", Value: p.Label}},
	}
	if out != nil {
		s.Status = out.Status
		s.Alerts = out.Alerts
		s.Recommendations = out.Recommendations
	}

	for _, q := range p.Questions() {
		s.Fields = append(s.Fields, Field{Key: q.Summary, Value: fieldValue(q, a)})
	}
	return s
}

func fieldValue(q Question, a Answers) any {
	switch q.Kind {
	case KindYesNo:
		return a.Observed.Has(q.ID)
	case KindMultiSelect:
		selected := []string{}
		for _, o := range q.Options {
			if a.Observed.Has(o.ID) {
				selected = append(selected, o.Label)
			}
		}
		return selected
	case KindNumber:
		if !Active(q, a) {
			return ""
		}
		if v, ok := a.Value(q.ID); ok {
			return v
		}
		return ""
	default:
		return ""
	}
}
