package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"meetscribe/cmd/meetscribe/cmd/version"
	"meetscribe/internal/app"
	"meetscribe/internal/config"
)

// rootCmd starts the HTTP server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "meetscribe",
	Short: "HTTP service that turns meeting audio into transcripts and structured minutes",
	Long: `meetscribe accepts uploaded meeting audio or an existing transcript over HTTP,
transcribes the audio with word-level timestamps, and generates structured
meeting minutes (summary, participants, topics, decisions, action items).

OPENAI_API_KEY must be set in the environment or a .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	srv, err := app.InitializeServer(cfg, logger)
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(version.Cmd)
}
