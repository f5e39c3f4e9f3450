package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Timed interview-practice quizzes in the terminal",
	Long:  "Quizdeck runs timed multiple-choice quizzes loaded from static JSON question sets.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("source", "", "Question source: http(s) base URL or directory, empty for the built-in sets (overrides QUIZDECK_SOURCE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides QUIZDECK_LOG_LEVEL)")
	pf.String("log-file", "", "Write logs to this file (overrides QUIZDECK_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads QUIZDECK_* variables, then applies any flag the user set.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	return cfg
}
