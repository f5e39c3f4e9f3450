package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// OptionList renders classified answer options, one per line.
type OptionList struct {
	Options []quiz.OptionView
	Width   int
}

// View renders the options.
func (o OptionList) View() string {
	var b strings.Builder
	for _, opt := range o.Options {
		marker := "  "
		var style lipgloss.Style
		switch opt.State {
		case quiz.OptionCorrectRevealed:
			marker, style = "✓ ", theme.Correct
		case quiz.OptionWrongSelected:
			marker, style = "✗ ", theme.Incorrect
		case quiz.OptionSelectedPending:
			marker, style = "▸ ", theme.Selected
		default:
			style = theme.Unselected
			if opt.Disabled {
				style = lipgloss.NewStyle().Foreground(theme.TextDim)
			}
		}

		text := opt.Text
		if text == "" {
			text = "-"
		}
		line := fmt.Sprintf("%s%s)  %s", marker, opt.Label, text)
		if o.Width > 0 {
			style = style.Width(o.Width)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
