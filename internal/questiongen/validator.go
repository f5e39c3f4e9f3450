package questiongen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/questions"
)

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Validator, e.Message)
}

// Validator checks one generated question. seen holds the normalized text
// of every question accepted so far, including existing ones.
type Validator interface {
	Name() string
	Validate(q questions.Question, seen map[string]bool) error
}

// StructuralValidator requires four distinct, non-empty options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q questions.Question, _ map[string]bool) error {
	fail := func(msg string) error {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	if strings.TrimSpace(q.Text) == "" {
		return fail("question text is empty")
	}
	distinct := make(map[string]bool, len(questions.Labels))
	for _, l := range questions.Labels {
		text := normalize(q.Option(l))
		if text == "" {
			return fail(fmt.Sprintf("option %s is empty", l))
		}
		if distinct[text] {
			return fail(fmt.Sprintf("option %s duplicates another option", l))
		}
		distinct[text] = true
	}
	if !q.CorrectAnswer.Valid() {
		return fail(fmt.Sprintf("correct answer %q is not a label", q.CorrectAnswer))
	}
	return nil
}

// DedupValidator rejects questions whose text was already seen.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(q questions.Question, seen map[string]bool) error {
	if seen[normalize(q.Text)] {
		return &ValidationError{Validator: v.Name(), Message: "question repeats an existing one"}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// IsValidationError reports whether err came from a Validator.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
