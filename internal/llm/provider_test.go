package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var answerSchema = &Schema{
	Name: "answer-pick",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestFinish(t *testing.T) {
	t.Run("text is encoded as a JSON string", func(t *testing.T) {
		resp, err := finish(Request{}, completion{text: `say "hi"`, model: "m", stop: StopEnd})
		require.NoError(t, err)

		var s string
		require.NoError(t, json.Unmarshal(resp.Content, &s))
		assert.Equal(t, `say "hi"`, s)
		assert.Equal(t, "m", resp.Model)
	})

	t.Run("schema output is validated", func(t *testing.T) {
		resp, err := finish(Request{Schema: answerSchema}, completion{text: `{"answer":"C"}`})
		require.NoError(t, err)
		assert.JSONEq(t, `{"answer":"C"}`, string(resp.Content))

		_, err = finish(Request{Schema: answerSchema}, completion{text: `{"answer":"E"}`})
		var invalid *ErrInvalidResponse
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("truncation wins over validation", func(t *testing.T) {
		_, err := finish(Request{Schema: answerSchema}, completion{text: `{"ans`, stop: StopMaxTokens})
		var truncated *ErrMaxTokensExceeded
		require.ErrorAs(t, err, &truncated)
		assert.Equal(t, `{"ans`, string(truncated.Content))
	})
}

func TestUsageTotal(t *testing.T) {
	assert.Equal(t, 15, Usage{InputTokens: 10, OutputTokens: 5}.Total())
}

func TestResolveModel(t *testing.T) {
	cases := []struct {
		name    string
		aliases map[string]string
		want    string
	}{
		{"claude-haiku", anthropicModels, "claude-haiku-4-5-20251001"},
		{"claude-sonnet", anthropicModels, "claude-sonnet-4-20250514"},
		{"gemini-flash", geminiModels, "gemini-2.0-flash"},
		{"gpt-4o-mini", openaiModels, "gpt-4o-mini"},
		{"claude-opus-4-1", anthropicModels, "claude-opus-4-1"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, resolveModel(tc.name, tc.aliases), tc.name)
	}
}

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"answer":"B"}`), Usage: Usage{InputTokens: 12, OutputTokens: 4}},
	)
	mock.Script(MockResponse{Err: &ErrRateLimit{}})

	resp, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Pick one."}},
		Schema:   answerSchema,
	})
	require.NoError(t, err)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, 16, resp.Usage.Total())

	_, err = mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail, "empty script")

	assert.Equal(t, 3, mock.CallCount())
	assert.Equal(t, "Pick one.", mock.Calls[0].Messages[0].Content)
	assert.Equal(t, "mock", mock.ModelID())
}

func TestMockProvider_ChecksSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"answer":1}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: answerSchema})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestPurpose(t *testing.T) {
	assert.Equal(t, "unknown", PurposeFrom(context.Background()))
	assert.Equal(t, "question-set", PurposeFrom(WithPurpose(context.Background(), "question-set")))
}

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("upstream said no")

	h := http.Header{}
	h.Set("Retry-After", "7")
	var rl *ErrRateLimit
	require.ErrorAs(t, classifyStatus(http.StatusTooManyRequests, h, cause), &rl)
	assert.Equal(t, 7*time.Second, rl.RetryAfter)
	assert.ErrorIs(t, rl, cause)

	var rejected *ErrRejected
	require.ErrorAs(t, classifyStatus(http.StatusUnauthorized, nil, cause), &rejected)
	assert.Equal(t, http.StatusUnauthorized, rejected.StatusCode)

	var unavail *ErrProviderUnavailable
	require.ErrorAs(t, classifyStatus(http.StatusBadGateway, nil, cause), &unavail)
	assert.Contains(t, unavail.Error(), "HTTP 502")
	require.ErrorAs(t, classifyStatus(0, nil, cause), &unavail)
}

func TestRetryAfterHeader(t *testing.T) {
	h := http.Header{}
	assert.Zero(t, retryAfter(nil))
	assert.Zero(t, retryAfter(h))

	h.Set("Retry-After", "Wed, 21 Oct 2026 07:28:00 GMT")
	assert.Zero(t, retryAfter(h), "dates are not supported")

	h.Set("Retry-After", "3")
	assert.Equal(t, 3*time.Second, retryAfter(h))
}

func TestRetryable(t *testing.T) {
	assert.True(t, Retryable(&ErrRateLimit{}))
	assert.True(t, Retryable(&ErrProviderUnavailable{}))
	assert.True(t, Retryable(&ErrInvalidResponse{}))
	assert.True(t, Retryable(errors.New("connection reset")))

	assert.False(t, Retryable(&ErrRejected{StatusCode: 400}))
	assert.False(t, Retryable(&ErrMaxTokensExceeded{}))
	assert.False(t, Retryable(context.Canceled))
	assert.False(t, Retryable(context.DeadlineExceeded))
}
