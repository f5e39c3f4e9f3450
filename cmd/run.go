package cmd

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/questions"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
)

// runApp builds the question loader and launches the TUI. The terminal
// belongs to the TUI, so logs go to the log file or nowhere.
func runApp(cmd *cobra.Command, opts app.Options) error {
	cfg := loadConfig(cmd)

	log, closer, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	log.WithField("source", sourceLabel(cfg.Source)).Info("quizdeck starting")

	opts.Deps = quizscreen.Deps{
		Loader: questions.NewLoader(questions.NewSource(cfg.Source)),
		Config: cfg.Quiz,
		Log:    logrus.NewEntry(log),
	}
	opts.Status = sourceLabel(cfg.Source)

	return app.Run(opts, log)
}

// sourceLabel is a short description of where sets come from.
func sourceLabel(source string) string {
	if source == "" {
		return "built-in sets"
	}
	if u, err := url.Parse(source); err == nil && u.Host != "" {
		return u.Host
	}
	return filepath.Base(source)
}
