package questions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSet_FiltersMalformedEntries(t *testing.T) {
	data := []byte(`[
		{"question": "Q1", "options": {"A": "a", "B": "b"}, "correct_answer": "A"},
		{"question": "", "options": {"A": "a"}, "correct_answer": "A"},
		{"question": "no options", "correct_answer": "B"},
		{"question": "bad answer", "options": {"A": "a"}, "correct_answer": "E"},
		null,
		"string entry",
		{"question": "Q2", "options": {"A": "a", "B": "b", "C": "c", "D": "d"}, "correct_answer": "D", "explanation": "because"}
	]`)

	set, err := ParseSet(data)
	require.NoError(t, err)
	require.Len(t, set, 2)

	assert.Equal(t, "Q1", set[0].Text)
	assert.Equal(t, 1, set[0].ID)
	assert.Equal(t, "Q2", set[1].Text)
	assert.Equal(t, 2, set[1].ID, "ids follow position after filtering")
	assert.Equal(t, LabelD, set[1].CorrectAnswer)
	assert.Equal(t, "because", set[1].Explanation)
}

func TestParseSet_KeepsExplicitIDs(t *testing.T) {
	data := []byte(`[
		{"id": 42, "question": "Q", "options": {"A": "a"}, "correct_answer": "A"},
		{"question": "Q", "options": {"A": "a"}, "correct_answer": "A"}
	]`)

	set, err := ParseSet(data)
	require.NoError(t, err)
	assert.Equal(t, 42, set[0].ID)
	assert.Equal(t, 2, set[1].ID)
}

func TestParseSet_PositionalIDsSkipDeclaredIDs(t *testing.T) {
	data := []byte(`[
		{"id": 2, "question": "Q1", "options": {"A": "a", "B": "b"}, "correct_answer": "A"},
		{"question": "Q2", "options": {"A": "a", "B": "b"}, "correct_answer": "A"},
		{"question": "Q3", "options": {"A": "a", "B": "b"}, "correct_answer": "A"},
		{"id": 4, "question": "Q4", "options": {"A": "a", "B": "b"}, "correct_answer": "A"}
	]`)

	set, err := ParseSet(data)
	require.NoError(t, err)
	require.Len(t, set, 4)

	ids := make([]int, len(set))
	for i, q := range set {
		ids[i] = q.ID
	}
	assert.Equal(t, []int{2, 3, 5, 4}, ids)
}

func TestParseSet_RejectsNonIntegerID(t *testing.T) {
	data := []byte(`[
		{"id": "seven", "question": "Q", "options": {"A": "a"}, "correct_answer": "A"},
		{"question": "R", "options": {"A": "a"}, "correct_answer": "A"}
	]`)

	set, err := ParseSet(data)
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, "R", set[0].Text)
}

func TestParseSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
		kind FailureKind
	}{
		{name: "object body", data: `{"questions": []}`, want: ErrNotArray, kind: FailureShape},
		{name: "null body", data: `null`, want: ErrNotArray, kind: FailureShape},
		{name: "empty array", data: `[]`, want: ErrNoQuestions, kind: FailureEmpty},
		{name: "all filtered", data: `[{"question": "x"}]`, want: ErrNoQuestions, kind: FailureEmpty},
		{name: "not json", data: `<html>`, kind: FailureDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSet([]byte(tt.data))
			require.Error(t, err)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want))
			}
			assert.Equal(t, tt.kind, classify(err))
		})
	}
}

func TestParseLabel(t *testing.T) {
	for in, want := range map[string]Label{"a": LabelA, "B": LabelB, "3": LabelC, " d ": LabelD} {
		got, ok := ParseLabel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := ParseLabel("e")
	assert.False(t, ok)
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"[Ownership] Take the lead (Amazon LP)", "Take the lead"},
		{"Plain question?", "Plain question?"},
		{"[Tag] only prefix", "only prefix"},
		{"What does f(x) return", "What does f(x) return"},
		{"Uses len() (Python)", "Uses len()"},
		{"(all parens)", "(all parens)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayText(tt.in), tt.in)
	}
}

func TestEmbeddedSetsParse(t *testing.T) {
	names, err := Topics(Embedded())
	require.NoError(t, err)
	require.Contains(t, names, "python")
	require.Contains(t, names, "amazon_leadership_principle_questions3")

	for _, name := range names {
		src := EmbeddedSource()
		set, err := NewLoader(src).Load(t.Context(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, set, name)
	}
}
