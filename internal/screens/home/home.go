package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/checklist"
	"github.com/abhisek/triage/internal/ranking"
	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/screens/pathway"
	"github.com/abhisek/triage/internal/screens/symptoms"
	"github.com/abhisek/triage/internal/ui/components"
	"github.com/abhisek/triage/internal/ui/layout"
	"github.com/abhisek/triage/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The symptom checker ranks against cat.
func New(cat ranking.Catalog) *HomeScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: factory()}
			}
		}
	}

	items := []components.MenuItem{
		{
			Label:       "Acute insomnia",
			Description: checklist.Acute().Label + ": symptoms for less than 3 months",
			Action:      push(func() screen.Screen { return pathway.New(checklist.Acute()) }),
		},
		{
			Label:       "Chronic insomnia",
			Description: checklist.Chronic().Label + ": symptoms for 3 months or more",
			Action:      push(func() screen.Screen { return pathway.New(checklist.Chronic()) }),
		},
		{
			Label:       "Symptom checker",
			Description: "Rank common conditions by reported symptoms",
			Action:      push(func() screen.Screen { return symptoms.New(cat) }),
			Disabled:    len(cat) == 0,
		},
		{
			Label:  "Exit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("What would you like to check?")

	card := theme.Card.
		Width(cw).
		Render(title + "\n\n" + h.menu.View())

	notice := theme.Hint.Render("Demonstration only. Not a substitute for a clinical assessment.")

	content := strings.Join([]string{card, notice}, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
