package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/server"
	"github.com/rgehrsitz/billimpact/internal/session"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(a *app) *cobra.Command {
	var (
		envFile string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the questionnaire HTTP API",
		Long: `Serve the step-by-step questionnaire and calculation API.

Settings come from the environment, optionally loaded from a .env file:
  PORT                   listen port (default 8080)
  BILLIMPACT_REFERENCE   reference data YAML (default: embedded tables)
  SESSION_TTL            idle session lifetime, e.g. 30m (default 2h)
  LOG_LEVEL              debug, info, warn or error (default info)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if !a.debug {
				if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
					a.level.SetLevel(lvl)
				} else {
					a.sugar().Warnw("ignoring invalid LOG_LEVEL", "value", cfg.LogLevel)
				}
			}

			refFile := a.referenceFile
			if refFile == "" {
				refFile = cfg.ReferenceFile
			}
			engine, err := a.loadEngineFrom(refFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, a, cfg, engine)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading settings")
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Listen port (overrides PORT)")
	return cmd
}

// runServer serves the API and sweeps idle sessions until ctx is cancelled
func runServer(ctx context.Context, a *app, cfg config.ServerConfig, engine *calculation.CalculationEngine) error {
	logger := a.sugar()
	sessions := session.NewStore(cfg.SessionTTL)
	srv := server.New(server.Config{Port: cfg.Port, ShutdownTimeout: shutdownTimeout}, engine, sessions, logger)

	logger.Infow("starting server", "addr", srv.Addr(), "sessionTTL", sessions.TTL().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return sessions.RunSweeper(gctx, 0, func(removed int) {
			if removed > 0 {
				logger.Infow("expired sessions removed", "count", removed, "active", sessions.Len())
			}
		})
	})

	return g.Wait()
}
