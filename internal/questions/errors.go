package questions

import (
	"errors"
	"fmt"
)

var (
	// ErrNotArray is returned when a question-set body is valid JSON but not an array.
	ErrNotArray = errors.New("invalid data format: expected an array")

	// ErrNoQuestions is returned when no entry survives shape filtering.
	ErrNoQuestions = errors.New("no valid questions found after filtering")

	// ErrSetTooLarge is returned when a body exceeds the size limit.
	ErrSetTooLarge = errors.New("question set too large")
)

// FailureKind classifies why a question set could not be loaded.
type FailureKind string

const (
	FailureFetch  FailureKind = "fetch"
	FailureStatus FailureKind = "status"
	FailureDecode FailureKind = "decode"
	FailureShape  FailureKind = "shape"
	FailureEmpty  FailureKind = "empty"

	FailureTooLarge FailureKind = "too_large"
)

// LoadError is the single failure type surfaced by the loader. The UI shows
// every kind as "no questions available"; the kind is kept for logs.
type LoadError struct {
	Kind       FailureKind
	Path       string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	if e.Kind == FailureStatus {
		return fmt.Sprintf("load %s: unexpected status %d", e.Path, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Kind)
}

func (e *LoadError) Unwrap() error { return e.Err }

// StatusError reports a non-successful response from a Source.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to load questions: %s", e.Status)
}
