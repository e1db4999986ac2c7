package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/huangsam/armory/core"
	"github.com/huangsam/armory/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// shutdownGrace bounds how long in-flight requests may finish on shutdown.
const shutdownGrace = 10 * time.Second

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve charts and share links over HTTP.",
	Long: `Start a read-only HTTP API. Every request carries its selection as a
share query, so the server keeps no state between requests.

Routes:
  GET /api/v1/health
  GET /api/v1/weapons?q=<text>&<share query>
  GET /api/v1/categories
  GET /api/v1/charts?<share query>[&chart=radar|bar][&random=N]
  GET /api/v1/share?<share query>
  GET /metrics

Errors are RFC 7807 problem documents. Requests above --rate-limit are
answered with 429.

Examples:
  # Listen on the default address
  armory serve

  # Public listener with a tighter limit and debug logs
  armory serve --addr :8080 --rate-limit 5 --rate-burst 10 --debug`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		logger, err := newLogger(cfg.Debug)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		eng, err := core.LoadEngine(cfg)
		if err != nil {
			return err
		}
		logger.Info("catalog loaded", zap.Int("weapons", eng.Catalog.Len()), zap.String("path", cfg.CatalogPath))

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.New(eng, server.OptionsFromConfig(cfg, version), logger).Run(ctx, shutdownGrace)
	},
}

// newLogger returns the production logger, or the development one in debug mode.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
