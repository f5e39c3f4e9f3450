package questiongen

import "github.com/abhisek/quizdeck/internal/llm"

var optionText = map[string]any{"type": "string"}

// SetSchema defines the JSON schema for a generated batch of questions.
var SetSchema = &llm.Schema{
	Name:        "question-set",
	Description: "A batch of multiple-choice interview quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question shown to the candidate, self-contained, plain text",
						},
						"options": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"A": optionText,
								"B": optionText,
								"C": optionText,
								"D": optionText,
							},
							"required":             []any{"A", "B", "C", "D"},
							"additionalProperties": false,
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "Label of the single correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences on why the correct option is right",
						},
					},
					"required":             []any{"question", "options", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
