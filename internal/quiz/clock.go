package quiz

// QuestionTick is the outcome of one per-question timer tick.
type QuestionTick int

const (
	// TickStale means the tick belongs to a replaced chain or a stopped
	// session. Nothing changed and the chain must not be re-armed.
	TickStale QuestionTick = iota

	// TickContinue means one second was consumed; re-arm the chain.
	TickContinue

	// TickAutoAdvance means the question ran out and a next question
	// exists. The caller schedules AutoAdvance after AutoAdvanceDelay.
	TickAutoAdvance

	// TickFinished means the last question ran out and the session stopped.
	TickFinished
)

func (t QuestionTick) String() string {
	switch t {
	case TickContinue:
		return "continue"
	case TickAutoAdvance:
		return "auto-advance"
	case TickFinished:
		return "finished"
	default:
		return "stale"
	}
}

func (e *Engine) ticking() bool {
	return e.running && !e.loading && !e.closed && len(e.set) > 0
}

// TickTotal consumes one second of the total budget. It returns true while
// the chain should keep going. Reaching zero stops the session.
func (e *Engine) TickTotal() bool {
	if !e.ticking() {
		return false
	}
	if e.totalRemaining > 0 {
		e.totalRemaining--
	}
	if e.totalRemaining == 0 {
		e.running = false
		return false
	}
	return true
}

// TickQuestion consumes one second of the per-question budget for the
// chain armed at epoch.
func (e *Engine) TickQuestion(epoch int) QuestionTick {
	if epoch != e.epoch || !e.ticking() {
		return TickStale
	}
	if e.questionRemaining > 1 {
		e.questionRemaining--
		return TickContinue
	}

	e.questionRemaining = 0
	if e.current < len(e.set)-1 {
		e.questionRemaining = e.cfg.QuestionBudget
		return TickAutoAdvance
	}
	e.running = false
	return TickFinished
}

// AutoAdvance performs the move scheduled by TickAutoAdvance. A delivery
// for an epoch that is no longer current is ignored.
func (e *Engine) AutoAdvance(epoch int) bool {
	if epoch != e.epoch {
		return false
	}
	return e.Advance()
}
