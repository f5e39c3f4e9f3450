package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu. Heading items
// are rendered as section titles and never selected.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
	Heading  bool
	// Note is shown dimmed after the label, e.g. "coming soon".
	Note string
}

func (i MenuItem) selectable() bool { return !i.Disabled && !i.Heading }

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first selectable item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if item.selectable() {
			selected = i
			break
		}
	}
	return Menu{Items: items, Selected: selected}
}

// Update moves the cursor with up/down (or k/j) and runs the selected
// item's Action on enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	case "enter":
		if item, ok := m.Current(); ok && item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

// step moves to the next selectable item in direction dir, staying put at
// either end.
func (m *Menu) step(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if m.Items[i].selectable() {
			m.Selected = i
			return
		}
	}
}

// Current returns the selected item if it can be chosen.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) || !m.Items[m.Selected].selectable() {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		switch {
		case item.Heading:
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(theme.SectionHeading.Render(strings.ToUpper(item.Label)))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render("  ▸ " + item.Label))
		case item.Disabled:
			b.WriteString(theme.Disabled.Render("    " + item.Label))
		default:
			b.WriteString(theme.Unselected.Render("    " + item.Label))
		}
		if item.Note != "" && !item.Heading {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + item.Note))
		}
		b.WriteString("\n")
	}
	return b.String()
}
