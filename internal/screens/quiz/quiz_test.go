package quiz

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/questions"
	qz "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screens/summary"
)

type stubLoader struct {
	set    []questions.Question
	err    error
	topics []string
}

func (l *stubLoader) Load(_ context.Context, topic string) ([]questions.Question, error) {
	l.topics = append(l.topics, topic)
	return l.set, l.err
}

func makeSet(n int) []questions.Question {
	set := make([]questions.Question, n)
	for i := range set {
		set[i] = questions.Question{
			ID:   i + 1,
			Text: fmt.Sprintf("Question number %d?", i+1),
			Options: map[questions.Label]string{
				questions.LabelA: "alpha",
				questions.LabelB: "bravo",
				questions.LabelC: "charlie",
				questions.LabelD: "delta",
			},
			CorrectAnswer: questions.LabelA,
			Explanation:   "Alpha comes first.",
		}
	}
	return set
}

func key(s string) tea.KeyPressMsg {
	r := []rune(s)
	return tea.KeyPressMsg{Code: r[0], Text: s}
}

func newLoaded(t *testing.T, n int, cfg qz.Config) *QuizScreen {
	t.Helper()
	s := New("python", Deps{Loader: &stubLoader{set: makeSet(n)}, Config: cfg})
	_, cmd := s.Update(loadedMsg{sessionID: s.engine.ID(), set: makeSet(n)})
	require.NotNil(t, cmd, "loading a non-empty set arms the timers")
	return s
}

func TestInit_LoadsTopic(t *testing.T) {
	loader := &stubLoader{set: makeSet(3)}
	s := New("python", Deps{Loader: loader})

	cmd := s.Init()
	require.NotNil(t, cmd)
	msg := cmd()

	loaded, ok := msg.(loadedMsg)
	require.True(t, ok)
	assert.Equal(t, s.engine.ID(), loaded.sessionID)
	assert.Equal(t, []string{"python"}, loader.topics)

	s.Update(msg)
	assert.False(t, s.engine.Loading())
	assert.Equal(t, 3, s.engine.Count())
}

func TestWrongAnswerThenNext(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})

	_, cmd := s.Update(key("b"))
	assert.Nil(t, cmd)
	rec, ok := s.engine.Record(1)
	require.True(t, ok)
	assert.Equal(t, qz.ResultWrong, rec.Result)
	assert.True(t, s.engine.FeedbackVisible())
	assert.Contains(t, s.View(100, 40), "Why it's Incorrect")

	// A second selection while feedback is showing changes nothing.
	s.Update(key("a"))
	rec, _ = s.engine.Record(1)
	assert.Equal(t, questions.LabelB, rec.Selected)

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.NotNil(t, cmd, "advancing re-arms the question timer")
	assert.Equal(t, 1, s.engine.CurrentIndex())
	assert.Equal(t, 120, s.engine.QuestionRemaining())
	assert.False(t, s.engine.FeedbackVisible())
}

func TestNextRequiresAnswer(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.engine.CurrentIndex())
}

func TestQuestionTimeoutAutoAdvances(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{QuestionBudget: 2})
	id := s.engine.ID()
	epoch := s.engine.Epoch()

	_, cmd := s.Update(questionTickMsg{sessionID: id, epoch: epoch})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, s.engine.QuestionRemaining())

	_, cmd = s.Update(questionTickMsg{sessionID: id, epoch: epoch})
	require.NotNil(t, cmd, "timeout schedules the auto-advance")
	assert.Equal(t, 0, s.engine.CurrentIndex())

	_, cmd = s.Update(autoAdvanceMsg{sessionID: id, epoch: epoch})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, s.engine.CurrentIndex())
	assert.Equal(t, 2, s.engine.QuestionRemaining())

	// A duplicate delivery is ignored.
	_, cmd = s.Update(autoAdvanceMsg{sessionID: id, epoch: epoch})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.engine.CurrentIndex())
}

func TestStaleTickIgnored(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})
	id := s.engine.ID()
	old := s.engine.Epoch()

	s.Update(key("a"))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	before := s.engine.QuestionRemaining()

	_, cmd := s.Update(questionTickMsg{sessionID: id, epoch: old})
	assert.Nil(t, cmd, "stale chain is not re-armed")
	assert.Equal(t, before, s.engine.QuestionRemaining())
}

func TestOtherSessionTicksIgnored(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})

	_, cmd := s.Update(totalTickMsg{sessionID: "other"})
	assert.Nil(t, cmd)
	_, cmd = s.Update(questionTickMsg{sessionID: "other", epoch: s.engine.Epoch()})
	assert.Nil(t, cmd)
	_, cmd = s.Update(loadedMsg{sessionID: "other", set: makeSet(1)})
	assert.Nil(t, cmd)

	assert.Equal(t, 1200, s.engine.TotalRemaining())
	assert.Equal(t, 120, s.engine.QuestionRemaining())
	assert.Equal(t, 3, s.engine.Count())
}

func TestRepeatedLoadIgnored(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})
	require.True(t, s.engine.SubmitAnswer(questions.LabelA))

	_, cmd := s.Update(loadedMsg{sessionID: s.engine.ID(), set: makeSet(5)})
	assert.Nil(t, cmd, "no second pair of tick chains")
	assert.Equal(t, 3, s.engine.Count())
	assert.Equal(t, 1, s.engine.Answered())
}

func TestTotalTickChain(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{TotalBudget: 2})
	id := s.engine.ID()

	_, cmd := s.Update(totalTickMsg{sessionID: id})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, s.engine.TotalRemaining())

	_, cmd = s.Update(totalTickMsg{sessionID: id})
	require.NotNil(t, cmd)
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok)
	sumScreen, ok := replace.Screen.(*summary.SummaryScreen)
	require.True(t, ok)
	assert.True(t, sumScreen.Summary().TimeUp)
	assert.False(t, s.engine.Running())

	// Ticking after time-up changes nothing.
	_, cmd = s.Update(totalTickMsg{sessionID: id})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.engine.TotalRemaining())
}

func TestLastQuestionTimeoutFinishes(t *testing.T) {
	s := newLoaded(t, 1, qz.Config{QuestionBudget: 1})

	_, cmd := s.Update(questionTickMsg{sessionID: s.engine.ID(), epoch: s.engine.Epoch()})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)
	assert.False(t, s.engine.Running())
}

func TestFinishQuizShowsSummary(t *testing.T) {
	s := newLoaded(t, 2, qz.Config{})

	s.Update(key("a"))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(key("c"))
	assert.Equal(t, "Finish Quiz", s.engine.AdvanceLabel())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	sum := replace.Screen.(*summary.SummaryScreen).Summary()
	assert.Equal(t, 1, sum.Correct)
	assert.Equal(t, 1, sum.Wrong)
	assert.False(t, s.CapturesEscape())
}

func TestLoadFailureShowsRetry(t *testing.T) {
	loadErr := &questions.LoadError{
		Kind:       questions.FailureStatus,
		Path:       "/python.json",
		StatusCode: 404,
		Err:        &questions.StatusError{StatusCode: 404, Status: "404 Not Found"},
	}
	loader := &stubLoader{err: loadErr}
	s := New("python", Deps{Loader: loader})

	_, cmd := s.Update(s.Init()())
	assert.Nil(t, cmd)
	assert.True(t, s.engine.Empty())
	assert.ErrorIs(t, s.engine.Err(), loadErr)
	assert.False(t, s.CapturesEscape())
	assert.Contains(t, s.View(80, 24), "No questions available")

	_, cmd = s.Update(key("r"))
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	fresh, ok := replace.Screen.(*QuizScreen)
	require.True(t, ok)
	assert.NotEqual(t, s.engine.ID(), fresh.engine.ID())
	assert.True(t, fresh.engine.Loading())
}

func TestEmptySetIsTerminal(t *testing.T) {
	s := New("python", Deps{Loader: &stubLoader{}})

	_, cmd := s.Update(loadedMsg{sessionID: s.engine.ID()})
	assert.Nil(t, cmd, "no timers for an empty set")
	assert.True(t, s.engine.Empty())
	assert.Contains(t, s.View(80, 24), "No questions available")
}

func TestNilLoaderFails(t *testing.T) {
	s := New("", Deps{})
	s.Update(s.Init()())
	assert.True(t, s.engine.Empty())
	assert.Error(t, s.engine.Err())
}

func TestQuitConfirm(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})
	assert.True(t, s.CapturesEscape())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.True(t, s.confirmQuit)
	assert.Contains(t, s.View(80, 24), "Quit this quiz?")

	s.Update(key("n"))
	assert.False(t, s.confirmQuit)
	assert.Equal(t, 0, s.engine.CurrentIndex(), "n in the dialog does not advance")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(key("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestCloseStopsEverything(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})
	id := s.engine.ID()

	s.Close()
	assert.ErrorIs(t, s.ctx.Err(), context.Canceled)
	assert.True(t, s.engine.Closed())

	_, cmd := s.Update(totalTickMsg{sessionID: id})
	assert.Nil(t, cmd)
	_, cmd = s.Update(questionTickMsg{sessionID: id, epoch: s.engine.Epoch()})
	assert.Nil(t, cmd)
	assert.Equal(t, 1200, s.engine.TotalRemaining())

	// Closing twice is harmless.
	s.Close()
}

func TestLoadAfterCloseIgnored(t *testing.T) {
	s := New("python", Deps{Loader: &stubLoader{set: makeSet(2)}})
	s.Close()

	_, cmd := s.Update(loadedMsg{sessionID: s.engine.ID(), set: makeSet(2)})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.engine.Count())
}

func TestGridFocusAndJump(t *testing.T) {
	s := newLoaded(t, 25, qz.Config{})

	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, 10, s.focus)
	assert.Equal(t, 2, s.engine.ListPage())
	assert.Equal(t, 0, s.engine.CurrentIndex(), "moving focus does not navigate")

	_, cmd := s.Update(key("g"))
	assert.NotNil(t, cmd)
	assert.Equal(t, 10, s.engine.CurrentIndex())

	// Jumping to the current question is a no-op.
	_, cmd = s.Update(key("g"))
	assert.Nil(t, cmd)
}

func TestListPageKeys(t *testing.T) {
	s := newLoaded(t, 25, qz.Config{})

	s.Update(key("]"))
	s.Update(key("]"))
	assert.Equal(t, 3, s.engine.ListPage())
	assert.Equal(t, 20, s.focus)

	s.Update(key("]"))
	assert.Equal(t, 3, s.engine.ListPage(), "past the last page is ignored")

	s.Update(key("["))
	assert.Equal(t, 2, s.engine.ListPage())
	assert.Equal(t, 0, s.engine.CurrentIndex())
}

func TestKeyHintsFollowState(t *testing.T) {
	s := New("python", Deps{Loader: &stubLoader{}})
	assert.Len(t, s.KeyHints(), 1)

	s = newLoaded(t, 2, qz.Config{})
	assert.Equal(t, "Answer", s.KeyHints()[0].Description)

	s.Update(key("a"))
	assert.Equal(t, "Next Question", s.KeyHints()[0].Description)
}

func TestViewRendersSession(t *testing.T) {
	s := newLoaded(t, 3, qz.Config{})
	view := s.View(100, 40)

	assert.Contains(t, view, "Question 1 of 3")
	assert.Contains(t, view, "20:00")
	assert.Contains(t, view, "2:00")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "Next Question")
	assert.Contains(t, view, "page 1/1")
}
