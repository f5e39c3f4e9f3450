package questions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizdeck/internal/logging"
)

// DefaultSetPath is loaded when no topic has been chosen.
const DefaultSetPath = "/amazon_leadership_principle_questions3.json"

const maxSetSize = 8 << 20

// ResolvePath maps a topic to the path of its question set.
func ResolvePath(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return DefaultSetPath
	}
	return "/" + strings.ToLower(topic) + ".json"
}

// Loader fetches and parses question sets. It makes exactly one attempt
// per call.
type Loader struct {
	Source Source
}

// NewLoader returns a Loader reading from src.
func NewLoader(src Source) *Loader {
	return &Loader{Source: src}
}

// Load resolves topic, fetches the set and parses it. Every failure is
// returned as a *LoadError.
func (l *Loader) Load(ctx context.Context, topic string) ([]Question, error) {
	p := ResolvePath(topic)
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"topic": topic, "path": p})

	set, err := l.load(ctx, p)
	if err != nil {
		log.WithError(err).Warn("question set load failed")
		return nil, err
	}
	log.WithField("count", len(set)).Info("question set loaded")
	return set, nil
}

func (l *Loader) load(ctx context.Context, p string) ([]Question, error) {
	if l.Source == nil {
		return nil, &LoadError{Kind: FailureFetch, Path: p, Err: errors.New("no question source configured")}
	}

	rc, err := l.Source.Open(ctx, p)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			return nil, &LoadError{Kind: FailureStatus, Path: p, StatusCode: se.StatusCode, Err: err}
		}
		return nil, &LoadError{Kind: FailureFetch, Path: p, Err: err}
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxSetSize+1))
	if err != nil {
		return nil, &LoadError{Kind: FailureFetch, Path: p, Err: fmt.Errorf("read body: %w", err)}
	}
	if len(data) > maxSetSize {
		return nil, &LoadError{Kind: FailureTooLarge, Path: p, Err: ErrSetTooLarge}
	}

	set, err := ParseSet(data)
	if err != nil {
		return nil, &LoadError{Kind: classify(err), Path: p, Err: err}
	}
	return set, nil
}
