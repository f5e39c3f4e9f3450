// Package questiongen drafts question sets with an LLM. Output goes
// through the same parser the quiz loader uses, so anything written to
// disk is loadable.
package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/questions"
)

// ErrEmptyBatch is returned when no generated question survives checking.
var ErrEmptyBatch = errors.New("no usable questions generated")

// Request describes one generation call.
type Request struct {
	Topic      string
	Count      int
	Difficulty string
	// Existing is the text of questions already in the target set.
	Existing []string
}

// Generator produces question sets using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

type setOutput struct {
	Questions []json.RawMessage `json:"questions"`
}

// Generate asks the model for req.Count questions on req.Topic and
// returns the ones that pass parsing and validation, numbered from 1.
func (g *Generator) Generate(ctx context.Context, req Request) ([]questions.Question, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("topic is required")
	}
	if req.Count <= 0 {
		req.Count = 10
	}
	if g.config.MaxCount > 0 && req.Count > g.config.MaxCount {
		req.Count = g.config.MaxCount
	}

	ctx = llm.WithPurpose(ctx, "question-set-gen")
	log := logging.FromContext(ctx).WithFields(logrus.Fields{"topic": req.Topic, "count": req.Count})

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(req, g.config)}},
		Schema:      SetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out setOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	body, err := json.Marshal(out.Questions)
	if err != nil {
		return nil, fmt.Errorf("re-encode questions: %w", err)
	}

	parsed, err := questions.ParseSet(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmptyBatch, err)
	}

	seen := make(map[string]bool, len(req.Existing)+len(parsed))
	for _, text := range req.Existing {
		seen[normalize(text)] = true
	}

	accepted := make([]questions.Question, 0, len(parsed))
	for _, q := range parsed {
		if verr := g.validate(q, seen); verr != nil {
			log.WithError(verr).WithField("question", q.Text).Debug("dropping generated question")
			continue
		}
		seen[normalize(q.Text)] = true
		q.ID = len(accepted) + 1
		accepted = append(accepted, q)
	}
	if len(accepted) == 0 {
		return nil, ErrEmptyBatch
	}

	log.WithField("accepted", len(accepted)).Info("generated question set")
	return accepted, nil
}

func (g *Generator) validate(q questions.Question, seen map[string]bool) error {
	for _, v := range g.config.Validators {
		if err := v.Validate(q, seen); err != nil {
			return err
		}
	}
	return nil
}

// Merge appends added to base and renumbers every question from 1.
func Merge(base, added []questions.Question) []questions.Question {
	out := make([]questions.Question, 0, len(base)+len(added))
	out = append(out, base...)
	out = append(out, added...)
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}

// WriteSet writes set as DIR/<topic>.json, the path the loader resolves
// for topic. It returns the written path.
func WriteSet(dir, topic string, set []questions.Question) (string, error) {
	name := strings.TrimPrefix(questions.ResolvePath(topic), "/")
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode set: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write set: %w", err)
	}
	return path, nil
}
