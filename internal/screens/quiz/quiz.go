package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/questions"
	qz "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/summary"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// SetLoader fetches the question set for a topic.
type SetLoader interface {
	Load(ctx context.Context, topic string) ([]questions.Question, error)
}

// Deps are the collaborators a quiz screen needs.
type Deps struct {
	Loader SetLoader
	Config qz.Config
	Log    *logrus.Entry
}

// QuizScreen runs one timed quiz session.
type QuizScreen struct {
	topic  string
	deps   Deps
	engine *qz.Engine
	log    *logrus.Entry

	ctx    context.Context
	cancel context.CancelFunc

	// focus is the grid cursor; it follows the current question after
	// every transition.
	focus       int
	confirmQuit bool
	finished    bool
	tick        time.Duration
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)
var _ screen.EscapeCapturer = (*QuizScreen)(nil)

// New creates a quiz screen for topic. An empty topic loads the default set.
func New(topic string, deps Deps) *QuizScreen {
	engine := qz.New(deps.Config)
	log := deps.Log
	if log == nil {
		log = logrus.NewEntry(logging.Discard())
	}
	log = log.WithFields(logrus.Fields{
		"session_id": engine.ID(),
		"topic":      topic,
	})

	ctx, cancel := context.WithCancel(logging.NewContext(context.Background(), log))
	return &QuizScreen{
		topic:  topic,
		deps:   deps,
		engine: engine,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
		tick:   time.Second,
	}
}

// Engine exposes the session state.
func (s *QuizScreen) Engine() *qz.Engine {
	return s.engine
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.loadCmd()
}

func (s *QuizScreen) Title() string {
	if s.topic == "" {
		return "Quiz"
	}
	return "Quiz · " + s.topic
}

// Close stops the timers and aborts an in-flight fetch.
func (s *QuizScreen) Close() {
	if s.engine.Closed() {
		return
	}
	s.cancel()
	s.engine.Close()
	s.log.Debug("quiz session closed")
}

// CapturesEscape is true while a session is on screen so Esc opens the
// quit confirmation instead of leaving.
func (s *QuizScreen) CapturesEscape() bool {
	return s.engine.Count() > 0 && !s.finished
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "y", Description: "Quit quiz"},
			{Key: "n", Description: "Keep going"},
		}
	case s.engine.Loading():
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.engine.Empty():
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case s.engine.FeedbackVisible():
		return []layout.KeyHint{
			{Key: "Enter", Description: s.engine.AdvanceLabel()},
			{Key: "←/→ g", Description: "Jump"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "a-d", Description: "Answer"},
			{Key: "←/→ g", Description: "Jump"},
			{Key: "[ ]", Description: "Page"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s, s.handleLoaded(msg)
	case totalTickMsg:
		return s, s.handleTotalTick(msg)
	case questionTickMsg:
		return s, s.handleQuestionTick(msg)
	case autoAdvanceMsg:
		return s, s.handleAutoAdvance(msg)
	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleLoaded(msg loadedMsg) tea.Cmd {
	if msg.sessionID != s.engine.ID() || s.engine.Closed() || !s.engine.Loading() {
		return nil
	}

	if msg.err != nil {
		s.engine.Fail(msg.err)
		entry := s.log.WithError(msg.err)
		var le *questions.LoadError
		if errors.As(msg.err, &le) {
			entry = entry.WithFields(logrus.Fields{"kind": le.Kind, "path": le.Path})
		}
		entry.Warn("question set failed to load")
		return nil
	}

	s.engine.Load(msg.set)
	s.log.WithField("count", s.engine.Count()).Info("question set loaded")
	if s.engine.Count() == 0 {
		return nil
	}
	s.focus = s.engine.CurrentIndex()
	return tea.Batch(s.totalTickCmd(), s.questionTickCmd(s.engine.Epoch()))
}

func (s *QuizScreen) handleTotalTick(msg totalTickMsg) tea.Cmd {
	if msg.sessionID != s.engine.ID() {
		return nil
	}
	if s.engine.TickTotal() {
		return s.totalTickCmd()
	}
	if s.engine.TimeUp() && !s.engine.Closed() && !s.finished {
		s.log.Info("quiz time is up")
		return s.finish()
	}
	return nil
}

func (s *QuizScreen) handleQuestionTick(msg questionTickMsg) tea.Cmd {
	if msg.sessionID != s.engine.ID() {
		return nil
	}
	switch s.engine.TickQuestion(msg.epoch) {
	case qz.TickContinue:
		return s.questionTickCmd(msg.epoch)
	case qz.TickAutoAdvance:
		return s.autoAdvanceCmd(msg.epoch)
	case qz.TickFinished:
		s.log.Info("last question timed out")
		return s.finish()
	}
	return nil
}

func (s *QuizScreen) handleAutoAdvance(msg autoAdvanceMsg) tea.Cmd {
	if msg.sessionID != s.engine.ID() || s.engine.Closed() {
		return nil
	}
	if !s.engine.AutoAdvance(msg.epoch) {
		return nil
	}
	return s.afterMove()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return nil
	}

	if s.engine.Loading() {
		return nil
	}

	if s.engine.Empty() {
		if key == "r" {
			return s.retry()
		}
		return nil
	}

	if s.finished {
		return nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return nil
	case "enter", "n":
		return s.next()
	case "left", "h":
		s.moveFocus(-1)
	case "right", "l":
		s.moveFocus(1)
	case "g":
		if s.engine.JumpTo(s.focus) {
			return s.afterMove()
		}
	case "[":
		s.changePage(-1)
	case "]":
		s.changePage(1)
	default:
		if label, ok := questions.ParseLabel(key); ok {
			s.answer(label)
		}
	}
	return nil
}

func (s *QuizScreen) answer(label questions.Label) {
	if !s.engine.SubmitAnswer(label) {
		return
	}
	q, _ := s.engine.Current()
	rec, _ := s.engine.Record(q.ID)
	s.log.WithFields(logrus.Fields{
		"question_id": q.ID,
		"selected":    label,
		"result":      rec.Result,
	}).Debug("answer recorded")
}

func (s *QuizScreen) next() tea.Cmd {
	if !s.engine.CanAdvance() {
		return nil
	}
	if s.engine.IsLast() {
		return s.finish()
	}
	if s.engine.Advance() {
		return s.afterMove()
	}
	return nil
}

// afterMove re-arms the question chain for the new epoch. The previous
// chain sees a stale epoch on its next tick and ends.
func (s *QuizScreen) afterMove() tea.Cmd {
	s.focus = s.engine.CurrentIndex()
	return s.questionTickCmd(s.engine.Epoch())
}

func (s *QuizScreen) moveFocus(delta int) {
	next := s.focus + delta
	if next < 0 || next >= s.engine.Count() {
		return
	}
	s.focus = next
	page := next/s.engine.Config().PageSize + 1
	if page != s.engine.ListPage() {
		s.engine.SetListPage(page)
	}
}

func (s *QuizScreen) changePage(delta int) {
	if s.engine.SetListPage(s.engine.ListPage() + delta) {
		s.focus = (s.engine.ListPage() - 1) * s.engine.Config().PageSize
	}
}

// finish hands the session over to the summary screen.
func (s *QuizScreen) finish() tea.Cmd {
	s.finished = true
	sum := s.engine.Summary()
	s.log.WithFields(logrus.Fields{
		"answered": sum.Answered,
		"correct":  sum.Correct,
		"time_up":  sum.TimeUp,
	}).Info("quiz finished")
	next := summary.New(s.topic, sum)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) retry() tea.Cmd {
	next := New(s.topic, s.deps)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) loadCmd() tea.Cmd {
	ctx, id, topic, loader := s.ctx, s.engine.ID(), s.topic, s.deps.Loader
	return func() tea.Msg {
		if loader == nil {
			return loadedMsg{sessionID: id, err: errors.New("no question source configured")}
		}
		set, err := loader.Load(ctx, topic)
		return loadedMsg{sessionID: id, set: set, err: err}
	}
}

func (s *QuizScreen) totalTickCmd() tea.Cmd {
	id := s.engine.ID()
	return tea.Tick(s.tick, func(time.Time) tea.Msg {
		return totalTickMsg{sessionID: id}
	})
}

func (s *QuizScreen) questionTickCmd(epoch int) tea.Cmd {
	id := s.engine.ID()
	return tea.Tick(s.tick, func(time.Time) tea.Msg {
		return questionTickMsg{sessionID: id, epoch: epoch}
	})
}

func (s *QuizScreen) autoAdvanceCmd(epoch int) tea.Cmd {
	id := s.engine.ID()
	return tea.Tick(s.engine.Config().AutoAdvanceDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{sessionID: id, epoch: epoch}
	})
}
