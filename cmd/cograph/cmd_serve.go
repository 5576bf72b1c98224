package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cographio/cograph/internal/api"
	"github.com/cographio/cograph/internal/report"
)

// shutdownTimeout bounds graceful HTTP shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Analyze the input once, then serve the results over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			log := newLogger(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			p, err := newPipeline(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer p.close()

			result, err := p.analyze(ctx)
			if err != nil {
				return err
			}

			deps := &api.RouterDeps{
				Log:         log,
				Pool:        p.pool,
				Run:         result.Run,
				Degrees:     report.DegreeBuckets(result.Degrees),
				CORSOrigins: cfg.CORSOrigins,
				Version:     version,
			}
			if p.runs != nil {
				deps.Runs = p.runs
			}

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           api.NewRouter(deps),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)

			go func() {
				log.WithField("addr", cfg.Addr()).Info("serving results")

				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
