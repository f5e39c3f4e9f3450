package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
)

func testSummary() quiz.Summary {
	return quiz.Summary{
		Total:      3,
		Answered:   2,
		Correct:    1,
		Wrong:      1,
		Unanswered: 1,
		Accuracy:   0.5,
		TimeUsed:   95 * time.Second,
		Results: []quiz.QuestionResult{
			{Number: 1, Text: "Which keyword declares a block-scoped constant?", Selected: "C", Correct: "C", Result: quiz.ResultCorrect},
			{Number: 2, Text: "What does len(nil) return for a slice?", Selected: "A", Correct: "B", Result: quiz.ResultWrong},
			{Number: 3, Text: "Which principle starts with the customer?", Correct: "A"},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New("python", testSummary())
	assert.Equal(t, "Quiz Summary", s.Title())
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New("python", testSummary())
	view := s.View(100, 30)

	assert.Contains(t, view, "Quiz complete!")
	assert.Contains(t, view, "Time used: 1:35")
	assert.Contains(t, view, "Accuracy: 50%")
	assert.Contains(t, view, "A → B")
	assert.Contains(t, view, "skipped")
}

func TestSummaryScreen_TimeUpHeading(t *testing.T) {
	sum := testSummary()
	sum.TimeUp = true
	view := New("", sum).View(100, 30)
	assert.Contains(t, view, "Time's up!")
}

func TestSummaryScreen_LongTextTruncated(t *testing.T) {
	sum := testSummary()
	sum.Results[0].Text = strings.Repeat("x", 200)
	view := New("", sum).View(80, 30)
	assert.Contains(t, view, "…")
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New("python", testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopToRootMsg{}, cmd())
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New("python", testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New("python", testSummary())
	assert.Len(t, s.KeyHints(), 2)
}
