package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triage/internal/ui/theme"
)

// CheckItem is one selectable entry of a Checklist.
type CheckItem struct {
	ID    string
	Label string
}

// Checklist is a multi-select list of checkboxes.
type Checklist struct {
	Items   []CheckItem
	Cursor  int
	checked map[string]bool
}

// NewChecklist creates a checklist with the given IDs pre-checked.
func NewChecklist(items []CheckItem, checked ...string) Checklist {
	c := Checklist{
		Items:   items,
		checked: make(map[string]bool, len(items)),
	}
	for _, id := range checked {
		c.checked[id] = true
	}
	return c
}

// Update handles navigation and toggling. Enter is left to the owning screen.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Items) == 0 {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "space", " ", "x":
		id := c.Items[c.Cursor].ID
		c.checked[id] = !c.checked[id]
	}
	return c, nil
}

// IsChecked reports whether the item with id is checked.
func (c Checklist) IsChecked(id string) bool {
	return c.checked[id]
}

// Checked returns the checked IDs in item order.
func (c Checklist) Checked() []string {
	var out []string
	for _, it := range c.Items {
		if c.checked[it.ID] {
			out = append(out, it.ID)
		}
	}
	return out
}

// View renders the checklist. height limits the visible rows; 0 shows all.
func (c Checklist) View(height int) string {
	start, end := 0, len(c.Items)
	if height > 0 && len(c.Items) > height {
		start = c.Cursor - height/2
		if start < 0 {
			start = 0
		}
		end = start + height
		if end > len(c.Items) {
			end = len(c.Items)
			start = end - height
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		it := c.Items[i]
		box := "[ ]"
		if c.checked[it.ID] {
			box = "[x]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, box, it.Label)

		switch {
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case c.checked[it.ID]:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	if start > 0 || end < len(c.Items) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d–%d of %d", start+1, end, len(c.Items))))
		b.WriteString("\n")
	}
	return b.String()
}
