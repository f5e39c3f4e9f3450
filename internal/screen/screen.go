// Package screen defines what the router stacks. Beyond Screen, a screen
// opts into extra behavior by implementing the small interfaces below.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Screen is one full-page view. View draws only the area between the
// header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer releases timers and in-flight work when the screen leaves the
// stack.
type Closer interface {
	Close()
}

// EscapeCapturer screens get Esc themselves while CapturesEscape is true;
// otherwise Esc goes back.
type EscapeCapturer interface {
	CapturesEscape() bool
}
