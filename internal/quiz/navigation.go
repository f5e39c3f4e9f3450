package quiz

// Advance moves to the next question. On the last question it does
// nothing; finishing is the caller's decision.
func (e *Engine) Advance() bool {
	if e.closed || len(e.set) == 0 || e.current >= len(e.set)-1 {
		return false
	}
	e.moveTo(e.current + 1)
	return true
}

// JumpTo moves directly to question i. Out-of-range indices and the
// current index are ignored.
func (e *Engine) JumpTo(i int) bool {
	if e.closed || i < 0 || i >= len(e.set) || i == e.current {
		return false
	}
	e.moveTo(i)
	return true
}

// moveTo is the single index transition: fresh question clock, hidden
// feedback, new epoch and the grid page that holds the new index.
func (e *Engine) moveTo(i int) {
	e.current = i
	e.questionRemaining = e.cfg.QuestionBudget
	e.feedback = false
	e.epoch++
	e.listPage = e.current/e.cfg.PageSize + 1
}

// SetListPage shows page p of the question grid without changing the
// current question.
func (e *Engine) SetListPage(p int) bool {
	if e.closed || p < 1 || p > e.TotalPages() {
		return false
	}
	e.listPage = p
	return true
}

// TotalPages returns the number of question-grid pages.
func (e *Engine) TotalPages() int {
	return (len(e.set) + e.cfg.PageSize - 1) / e.cfg.PageSize
}
