package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// QuestionGrid renders one page of question cells plus a page indicator.
// Focus is the index the cursor is on, or -1.
type QuestionGrid struct {
	Cells      []quiz.GridCell
	Focus      int
	Page       int
	TotalPages int
}

// View renders the grid.
func (g QuestionGrid) View() string {
	cells := make([]string, 0, len(g.Cells))
	for _, c := range g.Cells {
		var style lipgloss.Style
		switch c.State {
		case quiz.CellActive:
			style = theme.CellActive
		case quiz.CellCorrect:
			style = theme.CellCorrect
		case quiz.CellWrong:
			style = theme.CellWrong
		default:
			style = theme.CellNeutral
		}
		label := fmt.Sprintf(" %2d ", c.Number())
		if c.Index == g.Focus {
			label = fmt.Sprintf("[%2d]", c.Number())
			style = style.Underline(true)
		}
		cells = append(cells, style.Render(label))
	}

	row := strings.Join(cells, " ")
	pager := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("page %d/%d", g.Page, max(g.TotalPages, 1)))
	return row + "\n" + pager
}
