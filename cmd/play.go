package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play [topic]",
	Short: "Start a quiz right away",
	Long: `Start a quiz for topic without going through the dashboard.
Without a topic the default leadership-principles set is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.Options{Play: true}
		if len(args) == 1 {
			opts.Topic = args[0]
		}
		return runApp(cmd, opts)
	},
}
