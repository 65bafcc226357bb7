// Package pathway implements the step-by-step insomnia questionnaire.
package pathway

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/checklist"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/summary"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// step is one question together with the node it belongs to.
type step struct {
	node     string
	question checklist.Question
}

// PathwayScreen asks the questions of a pathway one at a time and shows
// the evaluation once the last active question is answered.
type PathwayScreen struct {
	pathway *checklist.Pathway
	steps   []step
	current int
	history []int // indices of previously answered steps
	answers checklist.Answers

	yesno  components.YesNo
	multi  components.Checklist
	number components.NumberInput

	err  string
	done bool
	now  func() time.Time
}

var _ screen.Screen = (*PathwayScreen)(nil)
var _ screen.KeyHintProvider = (*PathwayScreen)(nil)
var _ screen.BackHandler = (*PathwayScreen)(nil)

// New creates a questionnaire for p.
func New(p *checklist.Pathway) *PathwayScreen {
	s := &PathwayScreen{
		pathway: p,
		answers: checklist.NewAnswers(),
		now:     time.Now,
	}
	for _, n := range p.Nodes {
		for _, q := range n.Questions {
			s.steps = append(s.steps, step{node: n.Title, question: q})
		}
	}
	s.load(0)
	return s
}

func (s *PathwayScreen) Init() tea.Cmd {
	if s.question().Kind == checklist.KindNumber {
		return s.number.Init()
	}
	return nil
}

func (s *PathwayScreen) Title() string {
	return s.pathway.Title
}

// HandlesBack reports whether Esc steps back to a previous question.
func (s *PathwayScreen) HandlesBack() bool {
	return len(s.history) > 0
}

func (s *PathwayScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	switch s.question().Kind {
	case checklist.KindYesNo:
		hints = append(hints, layout.KeyHint{Key: "←→/y/n", Description: "Answer"})
	case checklist.KindMultiSelect:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navigate"},
			layout.KeyHint{Key: "Space", Description: "Toggle"})
	case checklist.KindNumber:
		hints = append(hints, layout.KeyHint{Key: "0-9", Description: "Enter value"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	if s.HandlesBack() {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Previous"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
	}
	return hints
}

func (s *PathwayScreen) question() checklist.Question {
	return s.steps[s.current].question
}

// load prepares the input widget for step i, restoring any earlier answer.
func (s *PathwayScreen) load(i int) {
	s.current = i
	s.err = ""
	q := s.question()

	switch q.Kind {
	case checklist.KindYesNo:
		s.yesno = components.NewYesNo(q.Label, s.answers.Observed.Has(q.ID))
	case checklist.KindMultiSelect:
		items := make([]components.CheckItem, len(q.Options))
		var checked []string
		for j, o := range q.Options {
			items[j] = components.CheckItem{ID: o.ID, Label: o.Label}
			if s.answers.Observed.Has(o.ID) {
				checked = append(checked, o.ID)
			}
		}
		s.multi = components.NewChecklist(items, checked...)
	case checklist.KindNumber:
		s.number = components.NewNumberInput(fmt.Sprintf("%d–%d", q.Min, q.Max), q.Min, q.Max)
		if v, ok := s.answers.Value(q.ID); ok {
			s.number.SetValue(v)
		}
	}
}

// commit stores the widget state as the answer to the current question.
func (s *PathwayScreen) commit() bool {
	q := s.question()

	switch q.Kind {
	case checklist.KindYesNo:
		if s.yesno.Value {
			s.answers.Observed.Add(q.ID)
		} else {
			s.answers.Observed.Remove(q.ID)
		}
	case checklist.KindMultiSelect:
		for _, o := range q.Options {
			s.answers.Observed.Remove(o.ID)
		}
		for _, id := range s.multi.Checked() {
			s.answers.Observed.Add(id)
		}
	case checklist.KindNumber:
		v, ok := s.number.Parse()
		if !ok {
			return false
		}
		s.answers.Values[q.ID] = v
	}
	return true
}

func (s *PathwayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "enter":
			return s.advance()
		case "esc":
			if len(s.history) > 0 {
				prev := s.history[len(s.history)-1]
				s.history = s.history[:len(s.history)-1]
				s.load(prev)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.question().Kind {
	case checklist.KindYesNo:
		s.yesno, cmd = s.yesno.Update(msg)
	case checklist.KindMultiSelect:
		s.multi, cmd = s.multi.Update(msg)
	case checklist.KindNumber:
		s.number, cmd = s.number.Update(msg)
	}
	return s, cmd
}

// advance records the current answer and moves to the next active
// question, or evaluates the pathway when none is left.
func (s *PathwayScreen) advance() (screen.Screen, tea.Cmd) {
	if !s.commit() {
		return s, nil
	}

	for i := s.current + 1; i < len(s.steps); i++ {
		q := s.steps[i].question
		if !checklist.Active(q, s.answers) {
			delete(s.answers.Values, q.ID)
			continue
		}
		s.history = append(s.history, s.current)
		s.load(i)
		if q.Kind == checklist.KindNumber {
			return s, s.number.Init()
		}
		return s, nil
	}

	return s.finish()
}

func (s *PathwayScreen) finish() (screen.Screen, tea.Cmd) {
	out, err := checklist.Evaluate(s.pathway, s.answers)
	if err != nil {
		s.err = err.Error()
		return s, nil
	}
	s.done = true
	sum := checklist.Summarize(s.pathway, s.answers, out, s.now())
	next := summary.New(out, sum)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// Answers returns the answers recorded so far.
func (s *PathwayScreen) Answers() checklist.Answers {
	return s.answers
}

func (s *PathwayScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	q := s.question()
	st := s.steps[s.current]

	var b strings.Builder

	position := fmt.Sprintf("Question %d of %d", s.current+1, len(s.steps))
	bar := components.NewProgressBar(position, float64(s.current)/float64(len(s.steps)), false, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render(st.node))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render(q.Label))
	b.WriteString("\n")
	if q.Help != "" {
		b.WriteString(lipgloss.NewStyle().Width(cw).Render(theme.Hint.Render(q.Help)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch q.Kind {
	case checklist.KindYesNo:
		b.WriteString(s.yesno.View())
		b.WriteString("\n")
	case checklist.KindMultiSelect:
		rows := height - 12
		if rows < 3 {
			rows = 3
		}
		b.WriteString(s.multi.View(rows))
		if len(s.multi.Checked()) == 0 {
			b.WriteString(theme.Hint.Render("  Nothing selected means none apply."))
			b.WriteString("\n")
		}
	case checklist.KindNumber:
		b.WriteString("  ")
		b.WriteString(s.number.View())
		b.WriteString("\n")
	}

	if s.err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.err))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).PaddingTop(1).Render(b.String()))
}
