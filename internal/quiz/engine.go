// Package quiz implements the timed quiz session: the session clock, the
// answer ledger, navigation over a loaded question set, and the pure view
// derivations the UI renders from.
//
// An Engine is owned by a single screen and is not safe for concurrent use.
// Timer messages are delivered through the UI event loop and carry the
// question epoch they were armed for, so a chain replaced by a navigation
// sees a stale epoch and stops on its own.
package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/questions"
)

// Config holds the session budgets.
type Config struct {
	// TotalBudget is the whole-quiz countdown in seconds.
	TotalBudget int

	// QuestionBudget is the per-question countdown in seconds.
	QuestionBudget int

	// PageSize is the number of cells per question-grid page.
	PageSize int

	// AutoAdvanceDelay is the pause between a question timing out and the
	// move to the next one.
	AutoAdvanceDelay time.Duration
}

// DefaultConfig returns the standard budgets: 20 minutes total, 2 minutes
// per question, 10 grid cells per page.
func DefaultConfig() Config {
	return Config{
		TotalBudget:      1200,
		QuestionBudget:   120,
		PageSize:         10,
		AutoAdvanceDelay: 100 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TotalBudget <= 0 {
		c.TotalBudget = d.TotalBudget
	}
	if c.QuestionBudget <= 0 {
		c.QuestionBudget = d.QuestionBudget
	}
	if c.PageSize <= 0 {
		c.PageSize = d.PageSize
	}
	if c.AutoAdvanceDelay < 0 {
		c.AutoAdvanceDelay = d.AutoAdvanceDelay
	}
	return c
}

// Engine is the state of one quiz session.
type Engine struct {
	cfg Config
	id  string

	set []questions.Question
	err error

	loading bool
	running bool
	closed  bool

	totalRemaining    int
	questionRemaining int

	current  int
	listPage int
	epoch    int

	// feedback is true while the current question shows its result.
	feedback bool

	records  map[int]AnswerRecord
	answered map[int]struct{}
}

// New creates a session in the loading state with both clocks full.
func New(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		cfg:               cfg,
		id:                uuid.NewString(),
		loading:           true,
		running:           true,
		totalRemaining:    cfg.TotalBudget,
		questionRemaining: cfg.QuestionBudget,
		listPage:          1,
		records:           make(map[int]AnswerRecord),
		answered:          make(map[int]struct{}),
	}
}

// Load installs the question set and leaves the loading state. An empty
// set is terminal: nothing ticks and nothing can be answered.
func (e *Engine) Load(set []questions.Question) {
	if e.closed || !e.loading {
		return
	}
	e.loading = false
	e.set = set
	e.current = 0
	e.listPage = 1
}

// Fail ends loading with no questions and keeps err for display.
func (e *Engine) Fail(err error) {
	if e.closed || !e.loading {
		return
	}
	e.loading = false
	e.set = nil
	e.err = err
}

// Close tears the session down. Every later tick or transition is a no-op.
func (e *Engine) Close() {
	e.closed = true
	e.running = false
}

func (e *Engine) ID() string            { return e.id }
func (e *Engine) Config() Config        { return e.cfg }
func (e *Engine) Loading() bool         { return e.loading }
func (e *Engine) Running() bool         { return e.running }
func (e *Engine) Closed() bool          { return e.closed }
func (e *Engine) Err() error            { return e.err }
func (e *Engine) Count() int            { return len(e.set) }
func (e *Engine) CurrentIndex() int     { return e.current }
func (e *Engine) ListPage() int         { return e.listPage }
func (e *Engine) Epoch() int            { return e.epoch }
func (e *Engine) FeedbackVisible() bool { return e.feedback }
func (e *Engine) TotalRemaining() int   { return e.totalRemaining }

// QuestionRemaining returns the seconds left on the current question.
func (e *Engine) QuestionRemaining() int { return e.questionRemaining }

// Empty reports whether loading finished without any playable question.
func (e *Engine) Empty() bool { return !e.loading && len(e.set) == 0 }

// TimeUp reports whether the total budget has run out.
func (e *Engine) TimeUp() bool { return e.totalRemaining == 0 }

// Questions returns the loaded set.
func (e *Engine) Questions() []questions.Question { return e.set }

// Current returns the displayed question.
func (e *Engine) Current() (questions.Question, bool) {
	if len(e.set) == 0 {
		return questions.Question{}, false
	}
	return e.set[e.current], true
}

// IsLast reports whether the current question is the final one.
func (e *Engine) IsLast() bool {
	return len(e.set) > 0 && e.current == len(e.set)-1
}
