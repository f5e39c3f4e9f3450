// Package placeholder is the page behind dashboard sections that are
// listed but not playable yet.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

type Screen struct {
	section catalog.Section
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

func New(section catalog.Section) *Screen {
	return &Screen{section: section}
}

func (p *Screen) Init() tea.Cmd { return nil }
func (p *Screen) Title() string { return p.section.Label }

// Update sends Enter back to the dashboard; Esc is handled by the app.
func (p *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *Screen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(p.section.Label)
	note := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Coming soon. Only the quiz is playable in this release.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, heading, "", note))
}

func (p *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter/Esc", Description: "Back"}}
}
