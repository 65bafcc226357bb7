// Package ranking renders the ranked candidates of the symptom checker.
package ranking

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rank "github.com/abhisek/triage/internal/ranking"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// RankingScreen shows each candidate's share as a bar, best first.
type RankingScreen struct {
	results  []rank.Result
	observed []string
}

var _ screen.Screen = (*RankingScreen)(nil)
var _ screen.KeyHintProvider = (*RankingScreen)(nil)

// New creates a RankingScreen for results computed from observed.
func New(results []rank.Result, observed []string) *RankingScreen {
	return &RankingScreen{results: results, observed: observed}
}

func (r *RankingScreen) Init() tea.Cmd {
	return nil
}

func (r *RankingScreen) Title() string {
	return "Likely conditions"
}

func (r *RankingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Edit symptoms"},
	}
}

func (r *RankingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return r, nil
}

func (r *RankingScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)

	var b strings.Builder

	if top, ok := rank.Top(r.results); ok {
		b.WriteString(theme.Title.Render("Most likely: " + top.Name))
		b.WriteString("\n")
	}
	if len(r.observed) == 0 {
		b.WriteString(theme.Hint.Render("No symptoms selected: every condition is equally likely."))
	} else {
		b.WriteString(theme.Hint.Render("Based on: " + strings.Join(r.observed, ", ")))
	}
	b.WriteString("\n\n")

	labelWidth := 0
	for _, res := range r.results {
		labelWidth = max(labelWidth, lipgloss.Width(res.Name))
	}

	for i, res := range r.results {
		bar := components.NewProgressBar(res.Name, res.Share, true, cw-12)
		bar.LabelWidth = labelWidth
		line := bar.View() + theme.Hint.Render(fmt.Sprintf("  %6.2f", res.Score))
		if i == 0 {
			line = theme.Selected.Render("▸ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Shares are relative to this catalog only. Not a diagnosis."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).PaddingTop(1).Render(b.String()))
}
