package picker

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/router"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
)

func pushedQuiz(t *testing.T, cmd tea.Cmd) *quizscreen.QuizScreen {
	t.Helper()
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	q, ok := push.Screen.(*quizscreen.QuizScreen)
	require.True(t, ok)
	return q
}

func selectLabel(t *testing.T, p *PickerScreen, label string) {
	t.Helper()
	for i, item := range p.menu.Items {
		if item.Label == label && !item.Heading {
			p.menu.Selected = i
			return
		}
	}
	t.Fatalf("no menu item %q", label)
}

func TestPicker_DefaultSet(t *testing.T) {
	p := New(quizscreen.Deps{})

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	q := pushedQuiz(t, cmd)
	assert.Equal(t, "Quiz", q.Title())
}

func TestPicker_Topic(t *testing.T) {
	p := New(quizscreen.Deps{})
	selectLabel(t, p, "JavaScript")

	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	q := pushedQuiz(t, cmd)
	assert.Equal(t, "Quiz · javascript", q.Title())
}

func TestPicker_CustomTopic(t *testing.T) {
	p := New(quizscreen.Deps{})
	selectLabel(t, p, "Custom topic…")

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.True(t, p.typing)
	assert.True(t, p.CapturesEscape())

	// Empty input is refused.
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, p.View(80, 30), "Type a topic name first.")

	for _, r := range "rust" {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	_, cmd = p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	q := pushedQuiz(t, cmd)
	assert.Equal(t, "Quiz · rust", q.Title())
}

func TestPicker_EscLeavesInput(t *testing.T) {
	p := New(quizscreen.Deps{})
	selectLabel(t, p, "Custom topic…")
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	p.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, p.typing)
	assert.False(t, p.CapturesEscape())
	assert.Len(t, p.KeyHints(), 3)
}

func TestPicker_View(t *testing.T) {
	p := New(quizscreen.Deps{})
	view := p.View(100, 40)

	assert.Contains(t, view, "COMPANIES")
	assert.Contains(t, view, "TypeScript")
	assert.Contains(t, view, "default set")
}
