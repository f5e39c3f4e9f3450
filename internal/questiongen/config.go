package questiongen

// Config controls the behavior of the Generator.
type Config struct {
	// Validators run on every generated question in order. A question
	// rejected by any of them is dropped from the batch.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxCount caps how many questions one call may request.
	MaxCount int

	// MaxExisting is how many existing questions are listed in the prompt
	// to steer the model away from repeats.
	MaxExisting int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&DedupValidator{},
		},
		MaxTokens:   4096,
		Temperature: 0.7,
		MaxCount:    30,
		MaxExisting: 20,
	}
}
