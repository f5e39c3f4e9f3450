package quiz

import (
	"time"

	"github.com/abhisek/quizdeck/internal/questions"
)

// QuestionResult is one row of the end-of-quiz breakdown.
type QuestionResult struct {
	Number   int
	Text     string
	Selected questions.Label
	Correct  questions.Label
	// Result is empty for an unanswered question.
	Result Result
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Total      int
	Answered   int
	Correct    int
	Wrong      int
	Unanswered int
	// Accuracy is correct over answered, in [0, 1].
	Accuracy float64
	TimeUsed time.Duration
	TimeUp   bool
	Results  []QuestionResult
}

// Summary builds the breakdown for the session so far.
func (e *Engine) Summary() Summary {
	s := Summary{
		Total:    len(e.set),
		Answered: e.Answered(),
		Correct:  e.CorrectCount(),
		Wrong:    e.WrongCount(),
		TimeUsed: time.Duration(e.cfg.TotalBudget-e.totalRemaining) * time.Second,
		TimeUp:   e.TimeUp(),
	}
	s.Unanswered = s.Total - s.Answered
	if s.Answered > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Answered)
	}

	s.Results = make([]QuestionResult, 0, len(e.set))
	for i, q := range e.set {
		r := QuestionResult{
			Number:  i + 1,
			Text:    questions.DisplayText(q.Text),
			Correct: q.CorrectAnswer,
		}
		if rec, ok := e.records[q.ID]; ok {
			r.Selected = rec.Selected
			r.Result = rec.Result
		}
		s.Results = append(s.Results, r)
	}
	return s
}
