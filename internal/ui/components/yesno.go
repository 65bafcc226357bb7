package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/triage/internal/ui/theme"
)

// YesNo is a two-way toggle. It starts at No.
type YesNo struct {
	Label string
	Value bool
}

// NewYesNo creates a toggle with the given initial value.
func NewYesNo(label string, value bool) YesNo {
	return YesNo{Label: label, Value: value}
}

// Update handles toggling. Enter is left to the owning screen.
func (y YesNo) Update(msg tea.Msg) (YesNo, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return y, nil
	}

	switch kmsg.String() {
	case "left", "right", "up", "down", "h", "l", "tab", "space", " ":
		y.Value = !y.Value
	case "y":
		y.Value = true
	case "n":
		y.Value = false
	}
	return y, nil
}

// View renders both choices with the current one highlighted.
func (y YesNo) View() string {
	no := "( ) No"
	yes := "( ) Yes"
	if y.Value {
		yes = "(•) Yes"
		return theme.Unselected.Render("  "+no) + "    " + theme.Selected.Render(yes)
	}
	no = "(•) No"
	return theme.Selected.Render("  "+no) + "    " + theme.Unselected.Render(yes)
}
