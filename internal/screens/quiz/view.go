package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/questions"
	qz "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch {
	case s.confirmQuit:
		return renderQuitConfirm(width)
	case s.engine.Loading():
		return renderLoading(width)
	case s.engine.Empty():
		return renderUnavailable(width)
	}
	return s.renderSession(width)
}

func (s *QuizScreen) renderSession(width int) string {
	e := s.engine
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderTimers(cw))
	b.WriteString("\n\n")

	q, _ := e.Current()
	heading := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", e.CurrentIndex()+1, e.Count()))
	body := heading + "\n\n" + theme.Body.Render(questions.DisplayText(q.Text)) + "\n\n" +
		components.OptionList{Options: e.Options()}.View()
	b.WriteString(components.Card(body, cw))
	b.WriteString("\n")

	if fb := s.renderFeedback(q, cw); fb != "" {
		b.WriteString(fb)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(components.Button{
		Label:  e.AdvanceLabel(),
		Key:    "enter",
		Active: e.CanAdvance(),
	}.View())
	b.WriteString("\n\n")

	b.WriteString(components.QuestionGrid{
		Cells:      e.PageCells(),
		Focus:      s.focus,
		Page:       e.ListPage(),
		TotalPages: e.TotalPages(),
	}.View())

	return components.Center(b.String(), width)
}

func (s *QuizScreen) renderTimers(cw int) string {
	e := s.engine
	total := components.ProgressBar{
		Label:   "Total   ",
		Value:   qz.FormatTime(e.TotalRemaining()),
		Percent: e.TotalPercent(),
		Urgent:  e.TotalUrgent(),
		Width:   cw,
	}
	question := components.ProgressBar{
		Label:   "Question",
		Value:   qz.FormatTime(e.QuestionRemaining()),
		Percent: e.QuestionPercent(),
		Urgent:  e.QuestionUrgent(),
		Width:   cw,
	}
	return total.View() + "\n" + question.View()
}

func (s *QuizScreen) renderFeedback(q questions.Question, cw int) string {
	heading, body, ok := s.engine.Explanation()
	if !ok {
		return ""
	}
	rec, _ := s.engine.Record(q.ID)

	verdict := theme.Correct.Render("✓ Correct")
	border := theme.Success
	if rec.Result == qz.ResultWrong {
		verdict = theme.Incorrect.Render(fmt.Sprintf("✗ Incorrect, the answer is %s", q.CorrectAnswer))
		border = theme.Error
	}

	content := verdict
	if body != "" {
		content += "\n\n" + theme.SectionHeading.Render(heading) + "\n" + theme.Body.Render(body)
	}
	return components.AccentCard(content, cw, border)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers will not be kept."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading questions...")
}

// renderUnavailable covers both an empty set and a failed load.
func renderUnavailable(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  No questions available.\n\n  Press r to retry or Esc to go back.")
}
