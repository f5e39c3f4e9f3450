package dashboard

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const banner = `┌─┐ ┬ ┬ ┬ ┌─┐ ┌┬┐ ┌─┐ ┌─┐ ┬┌─
│─┼┐│ │ │ ┌─┘  ││ ├┤  │   ├┴┐
└─┘└└─┘ ┴ └─┘ ─┴┘ └─┘ └─┘ ┴ ┴`

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, height))
	sections = append(sections, components.Card(d.menu.View(), cw))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderTitle(cw, height int) string {
	style := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	tagline := theme.Subtitle.Render("Interview practice in your terminal")

	// The banner needs roughly 24 rows alongside the menu.
	if height < 24 {
		return style.Render(theme.Title.Render("QUIZDECK") + "\n" + tagline)
	}
	return style.Render(theme.Title.Render(banner) + "\n\n" + tagline)
}
