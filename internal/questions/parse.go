package questions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// entrySchema is the minimal shape an entry must have to be playable.
// Anything beyond it is not validated.
const entrySchema = `{
  "type": "object",
  "required": ["question", "options", "correct_answer"],
  "properties": {
    "id": {"type": "integer"},
    "question": {"type": "string", "minLength": 1},
    "options": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"type": "string"}
    },
    "correct_answer": {"enum": ["A", "B", "C", "D"]},
    "explanation": {"type": "string"}
  }
}`

const entrySchemaURL = "schema://quizdeck/question-entry.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func entryValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(entrySchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse entry schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(entrySchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(entrySchemaURL)
	})
	return compiled, compileErr
}

type entry struct {
	ID            *int             `json:"id"`
	Question      string           `json:"question"`
	Options       map[Label]string `json:"options"`
	CorrectAnswer Label            `json:"correct_answer"`
	Explanation   string           `json:"explanation"`
}

var errInvalidJSON = errors.New("invalid JSON")

// ParseSet decodes a question-set body. Malformed entries are dropped.
// An entry without an id gets its 1-based position among the survivors,
// moved up past any id another entry declares.
func ParseSet(data []byte) ([]Question, error) {
	if !json.Valid(data) {
		return nil, errInvalidJSON
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, ErrNotArray
	}

	validator, err := entryValidator()
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(raw))
	taken := make(map[int]bool)
	for _, item := range raw {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(item))
		if err != nil {
			continue
		}
		if err := validator.Validate(doc); err != nil {
			continue
		}
		var e entry
		if err := json.Unmarshal(item, &e); err != nil {
			continue
		}
		if e.ID != nil {
			taken[*e.ID] = true
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, ErrNoQuestions
	}

	set := make([]Question, 0, len(entries))
	next := 0
	for i, e := range entries {
		q := Question{
			Text:          e.Question,
			Options:       e.Options,
			CorrectAnswer: e.CorrectAnswer,
			Explanation:   e.Explanation,
		}
		if e.ID != nil {
			q.ID = *e.ID
		} else {
			next = max(next, i+1)
			for taken[next] {
				next++
			}
			taken[next] = true
			q.ID = next
		}
		set = append(set, q)
	}
	return set, nil
}

// classify maps a ParseSet error onto a failure kind.
func classify(err error) FailureKind {
	switch {
	case errors.Is(err, ErrNotArray):
		return FailureShape
	case errors.Is(err, ErrNoQuestions):
		return FailureEmpty
	default:
		return FailureDecode
	}
}
