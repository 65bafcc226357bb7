// Package symptoms implements the symptom picker of the symptom checker.
package symptoms

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/ranking"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	rankscreen "github.com/abhisek/triage/internal/screens/ranking"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// SymptomsScreen lets the user tick observed symptoms and ranks the
// catalog against them.
type SymptomsScreen struct {
	catalog ranking.Catalog
	list    components.Checklist
	err     string
}

var _ screen.Screen = (*SymptomsScreen)(nil)
var _ screen.KeyHintProvider = (*SymptomsScreen)(nil)

// New creates a picker over every feature of cat.
func New(cat ranking.Catalog) *SymptomsScreen {
	features := cat.Features()
	items := make([]components.CheckItem, len(features))
	for i, f := range features {
		items[i] = components.CheckItem{ID: f, Label: displayName(f)}
	}
	return &SymptomsScreen{
		catalog: cat,
		list:    components.NewChecklist(items),
	}
}

// displayName capitalizes the first letter of a feature name.
func displayName(feature string) string {
	if feature == "" {
		return feature
	}
	r, size := utf8.DecodeRuneInString(feature)
	return string(unicode.ToUpper(r)) + feature[size:]
}

func (s *SymptomsScreen) Init() tea.Cmd {
	return nil
}

func (s *SymptomsScreen) Title() string {
	return "Symptom checker"
}

func (s *SymptomsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Rank"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SymptomsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.rank()
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// Observations returns the currently ticked symptoms.
func (s *SymptomsScreen) Observations() ranking.Observations {
	return ranking.NewObservations(s.list.Checked()...)
}

func (s *SymptomsScreen) rank() tea.Cmd {
	obs := s.Observations()
	results, err := ranking.Rank(s.catalog, obs)
	if err != nil {
		s.err = err.Error()
		return nil
	}
	s.err = ""
	slog.Debug("ranked catalog", "observations", obs.Len(), "candidates", len(results))

	next := rankscreen.New(results, obs.Sorted())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *SymptomsScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Which symptoms are present?"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf(
		"%d selected · %d conditions in catalog", len(s.list.Checked()), len(s.catalog))))
	b.WriteString("\n\n")

	rows := height - 8
	if rows < 3 {
		rows = 3
	}
	b.WriteString(s.list.View(rows))

	if s.err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.err))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).PaddingTop(1).Render(b.String()))
}
