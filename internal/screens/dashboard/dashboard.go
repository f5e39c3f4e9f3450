package dashboard

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/picker"
	"github.com/abhisek/quizdeck/internal/screens/placeholder"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
)

// DashboardScreen is the root screen: the section menu.
type DashboardScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates a new DashboardScreen. deps are handed to every quiz the
// picker starts.
func New(deps quizscreen.Deps) *DashboardScreen {
	var items []components.MenuItem
	for _, group := range catalog.Sections() {
		items = append(items, components.MenuItem{Label: group.Title, Heading: true})
		for _, sec := range group.Sections {
			items = append(items, sectionItem(sec, deps))
		}
	}
	items = append(items, components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &DashboardScreen{menu: components.NewMenu(items)}
}

func sectionItem(sec catalog.Section, deps quizscreen.Deps) components.MenuItem {
	item := components.MenuItem{Label: sec.Label}
	if !sec.Available {
		item.Note = "soon"
		item.Action = func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placeholder.New(sec)}
			}
		}
		return item
	}

	switch sec.ID {
	case catalog.SectionQuiz:
		item.Action = func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(deps)}
			}
		}
	}
	return item
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}
