package logging

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: "debug", Fallback: &buf})
	require.NoError(t, err)
	defer closer.Close()

	logger.WithField("topic", "python").Debug("hello")
	assert.Contains(t, buf.String(), "topic=python")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizdeck.log")
	logger, closer, err := New(Options{File: path})
	require.NoError(t, err)

	logger.Info("to file")
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	ctx := NewContext(context.Background(), logger.WithField("session_id", "abc"))
	FromContext(ctx).Info("ping")
	assert.Contains(t, buf.String(), "session_id=abc")
}

func TestFromContext_Default(t *testing.T) {
	entry := FromContext(context.Background())
	require.NotNil(t, entry)
	entry.Info("dropped")
}
