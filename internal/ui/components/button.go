package components

import (
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Button is a styled action label. Inactive buttons render dimmed.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	if b.Active {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
