package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write multiple-choice questions for technical interview practice.

Rules:
- Each question has exactly four options labelled A, B, C and D, and exactly one is correct.
- Distractors should be plausible and reflect common misconceptions, not jokes.
- Options must be distinct and non-empty.
- Questions must be self-contained. Do not refer to "the previous question".
- Spread the correct answer across the labels; do not always pick the same one.
- Keep the explanation to one or two sentences.
- Do not repeat any question from the "already in the set" list.`

func buildUserMessage(req Request, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Number of questions: %d\n", req.Count)
	if req.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s\n", req.Difficulty)
	}

	b.WriteString("\nAlready in the set:\n")
	b.WriteString(buildExisting(req.Existing, cfg.MaxExisting))

	return b.String()
}

// buildExisting lists the most recent existing questions, or "None".
func buildExisting(existing []string, max int) string {
	if len(existing) == 0 {
		return "None"
	}
	if max > 0 && len(existing) > max {
		existing = existing[len(existing)-max:]
	}

	var b strings.Builder
	for i, q := range existing {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
