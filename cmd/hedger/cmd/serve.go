package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rustyeddy/hedger/internal/server"
	"github.com/rustyeddy/hedger/journal"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Start the JSON API:

  GET  /health
  GET  /metrics
  GET  /api/v1/contract
  POST /api/v1/hedge
  GET  /api/v1/hedge/sweep?amount=&entry=&from=&to=&step=

Computed scenarios are recorded to the configured journal.

Example:
  hedger serve --config hedger.yaml --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	j, err := journal.Open(cfg.Journal.Type, cfg.Journal.Path())
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() {
		if err := j.Close(); err != nil {
			logger.Error("close journal", "err", err)
		}
	}()
	logger.Info("journal ready", "type", cfg.Journal.Type, "path", cfg.Journal.Path())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, j, logger).Run(ctx)
}
