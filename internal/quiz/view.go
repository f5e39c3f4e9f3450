package quiz

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/questions"
)

const (
	totalUrgentBelow    = 300
	questionUrgentBelow = 30
)

// OptionState is how an option is drawn.
type OptionState string

const (
	OptionNeutral         OptionState = "neutral"
	OptionSelectedPending OptionState = "selected-pending"
	OptionCorrectRevealed OptionState = "correct-revealed"
	OptionWrongSelected   OptionState = "wrong-selected"
)

// OptionView is one renderable answer option.
type OptionView struct {
	Label    questions.Label
	Text     string
	State    OptionState
	Disabled bool
}

// CellState is how a question-grid cell is drawn.
type CellState string

const (
	CellNeutral CellState = "neutral"
	CellActive  CellState = "active"
	CellCorrect CellState = "correct"
	CellWrong   CellState = "wrong"
)

// GridCell is one entry of the question grid.
type GridCell struct {
	Index int
	State CellState
}

// Number is the 1-based label shown in the cell.
func (c GridCell) Number() int { return c.Index + 1 }

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Percentage returns remaining as a share of budget, clamped to [0, 100].
func Percentage(remaining, budget int) float64 {
	if budget <= 0 {
		return 0
	}
	p := 100 * float64(remaining) / float64(budget)
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// TotalPercent is the share of the total budget left.
func (e *Engine) TotalPercent() float64 {
	return Percentage(e.totalRemaining, e.cfg.TotalBudget)
}

// QuestionPercent is the share of the question budget left.
func (e *Engine) QuestionPercent() float64 {
	return Percentage(e.questionRemaining, e.cfg.QuestionBudget)
}

// TotalUrgent reports whether under five minutes remain overall.
func (e *Engine) TotalUrgent() bool { return e.totalRemaining < totalUrgentBelow }

// QuestionUrgent reports whether under thirty seconds remain on the question.
func (e *Engine) QuestionUrgent() bool { return e.questionRemaining < questionUrgentBelow }

// Options classifies the current question's options in label order.
func (e *Engine) Options() []OptionView {
	q, ok := e.Current()
	if !ok {
		return nil
	}
	rec, answered := e.records[q.ID]

	views := make([]OptionView, 0, len(questions.Labels))
	for _, l := range questions.Labels {
		v := OptionView{Label: l, Text: q.Option(l), State: OptionNeutral}
		switch {
		case e.feedback && l == q.CorrectAnswer:
			v.State = OptionCorrectRevealed
		case e.feedback && answered && l == rec.Selected:
			v.State = OptionWrongSelected
		case !e.feedback && answered && l == rec.Selected:
			v.State = OptionSelectedPending
		}
		v.Disabled = v.Text == "" || e.feedback
		views = append(views, v)
	}
	return views
}

// GridState classifies question i for the grid. The active cell wins over
// any recorded result.
func (e *Engine) GridState(i int) CellState {
	if i == e.current {
		return CellActive
	}
	if i < 0 || i >= len(e.set) {
		return CellNeutral
	}
	rec, ok := e.records[e.set[i].ID]
	switch {
	case !ok:
		return CellNeutral
	case rec.Result == ResultCorrect:
		return CellCorrect
	default:
		return CellWrong
	}
}

// PageCells returns the grid cells on the current list page.
func (e *Engine) PageCells() []GridCell {
	start := (e.listPage - 1) * e.cfg.PageSize
	end := min(start+e.cfg.PageSize, len(e.set))
	if start >= end {
		return nil
	}
	cells := make([]GridCell, 0, end-start)
	for i := start; i < end; i++ {
		cells = append(cells, GridCell{Index: i, State: e.GridState(i)})
	}
	return cells
}

// CanAdvance reports whether the current question has been answered.
func (e *Engine) CanAdvance() bool {
	q, ok := e.Current()
	if !ok {
		return false
	}
	_, answered := e.records[q.ID]
	return answered
}

// AdvanceLabel is the caption of the next/finish action.
func (e *Engine) AdvanceLabel() string {
	if e.IsLast() {
		return "Finish Quiz"
	}
	return "Next Question"
}

// Explanation returns the feedback panel heading and body for the current
// question. ok is false when feedback is hidden.
func (e *Engine) Explanation() (heading, body string, ok bool) {
	q, has := e.Current()
	if !has || !e.feedback {
		return "", "", false
	}
	heading = "Explanation for the Correct Answer"
	if rec, answered := e.records[q.ID]; answered && rec.Result == ResultWrong {
		heading = "Why it's Incorrect"
	}
	return heading, q.Explanation, true
}
