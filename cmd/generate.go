package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/questiongen"
	"github.com/abhisek/quizdeck/internal/questions"
)

var topicPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Draft a question set with an LLM",
	Long: `Ask the configured LLM provider for a multiple-choice set on topic and
write it to DIR/<topic>.json, ready for --source DIR.

The provider is read from QUIZDECK_LLM_PROVIDER and the matching
QUIZDECK_*_API_KEY variable, or discovered from a plain provider API key.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		if !topicPattern.MatchString(topic) {
			return fmt.Errorf("topic %q may only contain letters, digits, '-' and '_'", topic)
		}
		count, _ := cmd.Flags().GetInt("count")
		out, _ := cmd.Flags().GetString("out")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		appendSet, _ := cmd.Flags().GetBool("append")

		cfg := loadConfig(cmd)
		log, closer, err := logging.New(logging.Options{
			Level:    cfg.LogLevel,
			File:     cfg.LogFile,
			Fallback: os.Stderr,
		})
		if err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}
		defer closer.Close()

		llmCfg := llm.ResolveConfig()
		if err := llmCfg.Validate(); err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		entry := logrus.NewEntry(log).WithField("topic", topic)
		ctx := logging.NewContext(cmd.Context(), entry)

		provider, err := llm.NewProvider(ctx, llmCfg, log)
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}

		loader := questions.NewLoader(questions.DirSource(out))
		existing, err := loader.Load(ctx, topic)
		if err != nil {
			var le *questions.LoadError
			if !errors.As(err, &le) || le.Kind != questions.FailureStatus {
				return fmt.Errorf("read existing set: %w", err)
			}
			existing = nil
		}

		texts := make([]string, 0, len(existing))
		for _, q := range existing {
			texts = append(texts, q.Text)
		}

		genCtx, cancel := context.WithTimeout(ctx, llmCfg.Timeout)
		defer cancel()

		gen := questiongen.New(provider, questiongen.DefaultConfig())
		set, err := gen.Generate(genCtx, questiongen.Request{
			Topic:      topic,
			Count:      count,
			Difficulty: difficulty,
			Existing:   texts,
		})
		if err != nil {
			return err
		}
		if appendSet {
			set = questiongen.Merge(existing, set)
		}

		path, err := questiongen.WriteSet(out, topic, set)
		if err != nil {
			return err
		}

		// The file must load the same way the quiz will load it.
		loaded, err := loader.Load(ctx, topic)
		if err != nil {
			return fmt.Errorf("written set does not load: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", len(loaded), path)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("count", 10, "Number of questions to request")
	generateCmd.Flags().String("out", ".", "Directory to write <topic>.json into")
	generateCmd.Flags().String("difficulty", "medium", "Difficulty hint: easy, medium or hard")
	generateCmd.Flags().Bool("append", false, "Keep the questions already in the file and add the new ones")
}
