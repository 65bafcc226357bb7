package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/checklist"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// SummaryScreen displays the evaluation of a completed pathway.
type SummaryScreen struct {
	outcome *checklist.Outcome
	summary *checklist.Summary
	offset  int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(outcome *checklist.Outcome, summary *checklist.Summary) *SummaryScreen {
	return &SummaryScreen{outcome: outcome, summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.outcome == nil || s.summary == nil {
		return ""
	}
	cw := layout.ContentWidth(width)
	wrap := lipgloss.NewStyle().Width(cw - 4)

	var b strings.Builder

	status := theme.Unmet
	mark := "✗"
	if s.outcome.CriteriaMet {
		status = theme.Met
		mark = "✓"
	}
	b.WriteString(status.Render(mark + " " + s.outcome.Status))
	b.WriteString("\n")

	if len(s.outcome.Alerts) > 0 {
		b.WriteString("\n")
		for _, a := range s.outcome.Alerts {
			b.WriteString(theme.Alert.Width(cw - 4).Render("! " + a))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Recommendations"))
	b.WriteString("\n")
	for i, r := range s.outcome.Recommendations {
		b.WriteString(wrap.Render(fmt.Sprintf("%d. %s", i+1, r)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Summary"))
	b.WriteString("\n")
	keyWidth := 0
	for _, f := range s.summary.Fields {
		keyWidth = max(keyWidth, lipgloss.Width(f.Key))
	}
	for _, f := range s.summary.Fields {
		key := f.Key + strings.Repeat(" ", keyWidth-lipgloss.Width(f.Key))
		b.WriteString(theme.Hint.Render(key) + "  " + theme.Body.Render(f.Text()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Created %s · ID %s", s.summary.Timestamp(), s.summary.ID)))

	lines := strings.Split(b.String(), "\n")
	if s.offset > len(lines)-1 {
		s.offset = len(lines) - 1
	}
	if height > 0 && len(lines) > height {
		end := s.offset + height
		if end > len(lines) {
			end = len(lines)
			s.offset = end - height
		}
		lines = lines[s.offset:end]
	} else {
		s.offset = 0
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n")))
}
