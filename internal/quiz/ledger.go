package quiz

import "github.com/abhisek/quizdeck/internal/questions"

// Result is the outcome of an answered question.
type Result string

const (
	ResultCorrect Result = "correct"
	ResultWrong   Result = "wrong"
)

// AnswerRecord is the latest answer given to a question.
type AnswerRecord struct {
	Selected questions.Label
	Result   Result
}

// SubmitAnswer records label as the answer to the current question and
// shows feedback. It is a no-op while feedback is showing, for an empty
// set, for an unknown label, or for an option with no text.
func (e *Engine) SubmitAnswer(label questions.Label) bool {
	if e.closed || e.feedback || len(e.set) == 0 || !label.Valid() {
		return false
	}
	q := e.set[e.current]
	if q.Option(label) == "" {
		return false
	}

	result := ResultWrong
	if q.IsCorrect(label) {
		result = ResultCorrect
	}
	e.records[q.ID] = AnswerRecord{Selected: label, Result: result}
	e.answered[q.ID] = struct{}{}
	e.feedback = true
	return true
}

// Record returns the answer recorded for question id.
func (e *Engine) Record(id int) (AnswerRecord, bool) {
	r, ok := e.records[id]
	return r, ok
}

// Answered returns how many distinct questions have an answer.
func (e *Engine) Answered() int { return len(e.answered) }

// CorrectCount returns the number of questions answered correctly.
func (e *Engine) CorrectCount() int { return e.count(ResultCorrect) }

// WrongCount returns the number of questions answered wrongly.
func (e *Engine) WrongCount() int { return e.count(ResultWrong) }

func (e *Engine) count(r Result) int {
	n := 0
	for _, rec := range e.records {
		if rec.Result == r {
			n++
		}
	}
	return n
}
