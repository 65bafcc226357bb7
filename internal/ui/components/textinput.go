package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/ui/theme"
)

// NumberInput wraps bubbles/textinput for bounded integer entry.
type NumberInput struct {
	Model    textinput.Model
	Min, Max int
	err      string
}

// NewNumberInput creates a focused input accepting integers in [min, max].
func NewNumberInput(placeholder string, min, max int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = len(strconv.Itoa(max))
	ti.Focus()

	return NumberInput{
		Model: ti,
		Min:   min,
		Max:   max,
	}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update filters non-digit keys and forwards the rest to the text input.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if key == "space" || (len(key) == 1 && (key[0] < '0' || key[0] > '9')) {
			return n, nil
		}
		n.err = ""
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// SetValue replaces the input text.
func (n *NumberInput) SetValue(v int) {
	n.Model.SetValue(strconv.Itoa(v))
}

// Parse returns the entered number, or false and records an error message
// when the input is empty or out of range.
func (n *NumberInput) Parse() (int, bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil {
		n.err = "enter a whole number"
		return 0, false
	}
	if v < n.Min || v > n.Max {
		n.err = "must be between " + strconv.Itoa(n.Min) + " and " + strconv.Itoa(n.Max)
		return 0, false
	}
	n.err = ""
	return v, true
}

// View renders the input and any validation error.
func (n NumberInput) View() string {
	view := n.Model.View()
	if n.err != "" {
		view += "  " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+n.err)
	}
	return view
}
