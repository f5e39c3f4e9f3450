package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/questions"
)

func TestFormatTime(t *testing.T) {
	tests := map[int]string{
		1200: "20:00",
		119:  "1:59",
		60:   "1:00",
		9:    "0:09",
		0:    "0:00",
		-3:   "0:00",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatTime(in), in)
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 100.0, Percentage(120, 120))
	assert.Equal(t, 50.0, Percentage(60, 120))
	assert.Equal(t, 0.0, Percentage(-1, 120))
	assert.Equal(t, 100.0, Percentage(200, 120))
	assert.Equal(t, 0.0, Percentage(10, 0))
}

func TestUrgency(t *testing.T) {
	e := New(Config{TotalBudget: 301, QuestionBudget: 31})
	e.Load(makeSet(2))
	assert.False(t, e.TotalUrgent())
	assert.False(t, e.QuestionUrgent())

	e.TickTotal()
	e.TickQuestion(e.Epoch())
	assert.False(t, e.TotalUrgent(), "exactly 300 is not urgent")
	assert.False(t, e.QuestionUrgent())

	e.TickTotal()
	e.TickQuestion(e.Epoch())
	assert.True(t, e.TotalUrgent())
	assert.True(t, e.QuestionUrgent())
}

func TestGridState(t *testing.T) {
	e := loaded(t, 4)
	require.True(t, e.SubmitAnswer(questions.LabelA))
	assert.Equal(t, CellActive, e.GridState(0), "active wins over correct")

	require.True(t, e.Advance())
	require.True(t, e.SubmitAnswer(questions.LabelC))
	require.True(t, e.Advance())

	assert.Equal(t, CellCorrect, e.GridState(0))
	assert.Equal(t, CellWrong, e.GridState(1))
	assert.Equal(t, CellActive, e.GridState(2))
	assert.Equal(t, CellNeutral, e.GridState(3))
	assert.Equal(t, CellNeutral, e.GridState(9))
}

func TestCorrectAnswerExplanation(t *testing.T) {
	e := loaded(t, 2)
	_, _, ok := e.Explanation()
	assert.False(t, ok)

	require.True(t, e.SubmitAnswer(questions.LabelA))
	heading, _, ok := e.Explanation()
	require.True(t, ok)
	assert.Equal(t, "Explanation for the Correct Answer", heading)

	opts := e.Options()
	assert.Equal(t, OptionCorrectRevealed, opts[0].State)
	assert.Equal(t, OptionNeutral, opts[1].State)
	assert.Equal(t, "Next Question", e.AdvanceLabel())
}

func TestSummary(t *testing.T) {
	e := loaded(t, 3)
	e.TickTotal()
	e.TickTotal()
	require.True(t, e.SubmitAnswer(questions.LabelA))
	require.True(t, e.Advance())
	require.True(t, e.SubmitAnswer(questions.LabelB))

	s := e.Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Answered)
	assert.Equal(t, 1, s.Correct)
	assert.Equal(t, 1, s.Wrong)
	assert.Equal(t, 1, s.Unanswered)
	assert.InDelta(t, 0.5, s.Accuracy, 1e-9)
	assert.Equal(t, 2*time.Second, s.TimeUsed)
	assert.False(t, s.TimeUp)

	require.Len(t, s.Results, 3)
	assert.Equal(t, ResultCorrect, s.Results[0].Result)
	assert.Equal(t, questions.LabelB, s.Results[1].Selected)
	assert.Equal(t, Result(""), s.Results[2].Result)
	assert.Equal(t, 3, s.Results[2].Number)
}
