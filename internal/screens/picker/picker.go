package picker

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

const topicLimit = 40

// PickerScreen lets the user choose a company or language set, the default
// set, or type a topic name.
type PickerScreen struct {
	deps  quizscreen.Deps
	menu  components.Menu
	input components.TextInput

	// typing is true while the custom-topic input has focus.
	typing bool
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)
var _ screen.EscapeCapturer = (*PickerScreen)(nil)

// New creates a new PickerScreen.
func New(deps quizscreen.Deps) *PickerScreen {
	p := &PickerScreen{
		deps:  deps,
		input: components.NewTextInput("topic, e.g. golang", topicLimit),
	}
	p.input.Blur()

	items := []components.MenuItem{
		{Label: "Quick start", Heading: true},
		{Label: "Leadership Principles", Note: "default set", Action: p.start("")},
	}
	for _, g := range catalog.Groups() {
		items = append(items, components.MenuItem{Label: g.Title, Heading: true})
		for _, t := range g.Topics {
			items = append(items, components.MenuItem{Label: t.Label, Action: p.start(t.Name)})
		}
	}
	items = append(items,
		components.MenuItem{Label: "Other", Heading: true},
		components.MenuItem{Label: "Custom topic…", Action: p.beginTyping},
	)
	p.menu = components.NewMenu(items)
	return p
}

func (p *PickerScreen) start(topic string) func() tea.Cmd {
	return func() tea.Cmd {
		next := quizscreen.New(topic, p.deps)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (p *PickerScreen) beginTyping() tea.Cmd {
	p.typing = true
	return p.input.Focus()
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Choose a topic"
}

// CapturesEscape keeps Esc inside the custom-topic input.
func (p *PickerScreen) CapturesEscape() bool {
	return p.typing
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	if p.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !p.typing {
		var cmd tea.Cmd
		p.menu, cmd = p.menu.Update(msg)
		return p, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			p.typing = false
			p.input.Blur()
			return p, nil
		case "enter":
			topic := p.input.Value()
			if topic == "" {
				p.input.SetError("Type a topic name first.")
				return p, nil
			}
			return p, p.start(topic)()
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}
