package picker

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (p *PickerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	content := theme.Title.Render("Pick a question set") + "\n\n" + p.menu.View()
	if p.typing {
		content += "\n" + p.input.View()
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(content, cw))
}
