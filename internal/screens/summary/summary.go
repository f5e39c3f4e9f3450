package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// SummaryScreen displays the end-of-quiz results.
type SummaryScreen struct {
	topic   string
	summary quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(topic string, summary quiz.Summary) *SummaryScreen {
	return &SummaryScreen{topic: topic, summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Dashboard"},
		{Key: "Esc", Description: "Topics"},
	}
}

// Summary returns the results being shown.
func (s *SummaryScreen) Summary() quiz.Summary {
	return s.summary
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	heading := "Quiz complete!"
	headingStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if sum.TimeUp {
		heading = "Time's up!"
		headingStyle = headingStyle.Foreground(theme.Error)
	}
	center(headingStyle, heading)
	if s.topic != "" {
		center(lipgloss.NewStyle().Foreground(theme.TextDim), s.topic)
	}
	b.WriteString("\n")

	mins := int(sum.TimeUsed.Minutes())
	secs := int(sum.TimeUsed.Seconds()) % 60
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Time used: %d:%02d", mins, secs))
	b.WriteString("\n")

	stats := fmt.Sprintf("Score: %d/%d     Correct: %d     Wrong: %d     Skipped: %d     Accuracy: %.0f%%",
		sum.Correct, sum.Total, sum.Correct, sum.Wrong, sum.Unanswered, sum.Accuracy*100)
	center(lipgloss.NewStyle().Foreground(theme.Text), stats)
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	textWidth := max(min(width-24, 50), 10)
	for _, r := range sum.Results {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, resultLine(r, textWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

func resultLine(r quiz.QuestionResult, textWidth int) string {
	text := r.Text
	if runes := []rune(text); len(runes) > textWidth {
		text = string(runes[:textWidth-1]) + "…"
	}

	var mark, answer string
	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch r.Result {
	case quiz.ResultCorrect:
		mark, answer, style = "✓", string(r.Selected), theme.Correct
	case quiz.ResultWrong:
		mark, answer, style = "✗", fmt.Sprintf("%s → %s", r.Selected, r.Correct), theme.Incorrect
	default:
		mark, answer = "·", "skipped"
	}
	return style.Render(fmt.Sprintf("%s %2d. %-*s  %s", mark, r.Number, textWidth, text, answer))
}
