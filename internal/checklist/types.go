// Package checklist evaluates the insomnia decision pathways: yes/no,
// multi-select and numeric answers are checked against an all-of criteria
// set and a declarative list of recommendation rules.
package checklist

import (
	"errors"

	"github.com/abhisek/triage/internal/ranking"
)

var (
	// ErrInvalidAnswer indicates a numeric answer outside its allowed range.
	ErrInvalidAnswer = errors.New("invalid answer")
	// ErrUnknownPathway indicates a pathway ID that is not registered.
	ErrUnknownPathway = errors.New("unknown pathway")
)

// QuestionKind selects how a question is answered.
type QuestionKind int

const (
	KindYesNo QuestionKind = iota
	KindMultiSelect
	KindNumber
)

func (k QuestionKind) String() string {
	switch k {
	case KindYesNo:
		return "yes/no"
	case KindMultiSelect:
		return "multi-select"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Option is one choice of a multi-select question. Selecting it adds the
// option ID to the observations.
type Option struct {
	ID    string
	Label string
}

// Question is a single input of a pathway.
type Question struct {
	ID      string
	Kind    QuestionKind
	Label   string
	Help    string
	Summary string // Field label in the evaluation summary
	Options []Option

	// Number questions only.
	Min, Max  int
	DependsOn string // Yes/no question that must be answered yes
}

// OptionLabel returns the label for an option ID of this question.
func (q Question) OptionLabel(id string) string {
	for _, o := range q.Options {
		if o.ID == id {
			return o.Label
		}
	}
	return ""
}

// Node is a titled group of questions.
type Node struct {
	Title     string
	Questions []Question
}

// Answers holds everything a user entered for one evaluation.
// Yes answers and selected option IDs live in Observed; numeric answers
// in Values keyed by question ID.
type Answers struct {
	Observed ranking.Observations
	Values   map[string]int
}

// NewAnswers returns an empty answer set.
func NewAnswers() Answers {
	return Answers{
		Observed: ranking.NewObservations(),
		Values:   make(map[string]int),
	}
}

// Value returns a numeric answer.
func (a Answers) Value(id string) (int, bool) {
	v, ok := a.Values[id]
	return v, ok
}

// Criteria is an all-of check over yes/no questions.
type Criteria struct {
	AllOf     []string
	MetText   string
	UnmetText string
}

// Pathway is a complete decision flow.
type Pathway struct {
	ID       string
	Title    string
	Label    string // Value of the first summary field
	Nodes    []Node
	Criteria Criteria
	Alerts   []Rule
	Rules    []Rule
}

// Questions returns all questions in node order.
func (p *Pathway) Questions() []Question {
	var out []Question
	for _, n := range p.Nodes {
		out = append(out, n.Questions...)
	}
	return out
}

// Question returns the question with the given ID.
func (p *Pathway) Question(id string) (Question, bool) {
	for _, n := range p.Nodes {
		for _, q := range n.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// Outcome is the result of evaluating a pathway.
type Outcome struct {
	CriteriaMet     bool     `json:"criteria_met"`
	Status          string   `json:"status"`
	Alerts          []string `json:"alerts"`
	Recommendations []string `json:"recommendations"`
}
