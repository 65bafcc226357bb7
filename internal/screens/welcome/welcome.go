package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/router"
	"github.com/abhisek/triage/internal/screen"
	"github.com/abhisek/triage/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	noticeAt     = 800 * time.Millisecond
	totalDur     = 1500 * time.Millisecond
)

// Disclaimer is shown before any questionnaire can be started.
const Disclaimer = "This is a demonstration tool. It does not give medical advice,\n" +
	"and its weights, thresholds and texts are illustrative only.\n" +
	"Always consult a qualified clinician."

type tickMsg time.Time

// WelcomeScreen shows the banner and the disclaimer, then hands over to
// the home screen once the user acknowledges it.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// The disclaimer must have been on screen before it can be acknowledged.
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if w.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Insomnia checklist · Symptom checker"))
	}

	if w.elapsed >= noticeAt {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Warning).
			Foreground(theme.Warning).
			Padding(0, 2).
			Align(lipgloss.Center).
			Render(Disclaimer))
	}

	if w.elapsed >= totalDur {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to acknowledge"))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
