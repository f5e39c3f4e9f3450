package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/questions"
	"github.com/abhisek/quizdeck/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve question sets over HTTP",
	Long: `Serve *.json question sets so that quizdeck clients can use
--source http://host:port. Without --dir the built-in sets are served.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		dir, _ := cmd.Flags().GetString("dir")
		if cmd.Flags().Changed("addr") {
			cfg.HTTPAddr, _ = cmd.Flags().GetString("addr")
		}

		log, closer, err := logging.New(logging.Options{
			Level:    cfg.LogLevel,
			File:     cfg.LogFile,
			Fallback: os.Stderr,
		})
		if err != nil {
			return fmt.Errorf("set up logging: %w", err)
		}
		defer closer.Close()

		var fsys fs.FS = questions.Embedded()
		if dir != "" {
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return fmt.Errorf("--dir %q is not a directory", dir)
			}
			fsys = os.DirFS(dir)
		}

		topics, err := questions.Topics(fsys)
		if err != nil {
			return fmt.Errorf("list question sets: %w", err)
		}
		log.WithField("topics", topics).Info("question sets available")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler := server.NewRouter(server.Options{
			FS:          fsys,
			CORSOrigins: cfg.CORSOrigins,
			Log:         log,
		})
		return server.ListenAndServe(ctx, cfg.HTTPAddr, handler, log)
	},
}

func init() {
	serveCmd.Flags().String("dir", "", "Directory of *.json question sets (default: built-in sets)")
	serveCmd.Flags().String("addr", ":8080", "Listen address (overrides QUIZDECK_ADDR)")
}
