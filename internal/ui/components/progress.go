package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ProgressBar displays a horizontal bar. Percent is in [0, 100].
type ProgressBar struct {
	Label   string
	Value   string
	Percent float64
	Urgent  bool
	Width   int
}

// View renders the progress bar as "label value ███░░░".
func (p ProgressBar) View() string {
	var head string
	if p.Label != "" {
		head += lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label) + " "
	}
	if p.Value != "" {
		style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		if p.Urgent {
			style = theme.Urgent
		}
		head += style.Render(fmt.Sprintf("%5s", p.Value)) + "  "
	}

	barWidth := max(p.Width-lipgloss.Width(head), 4)
	filled := min(max(int(float64(barWidth)*p.Percent/100), 0), barWidth)

	fill := theme.ProgressFilled
	if p.Urgent {
		fill = theme.ProgressUrgent
	}
	return head +
		fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}
