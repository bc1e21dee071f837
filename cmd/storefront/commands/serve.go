package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goflare.io/storefront/api"
	"goflare.io/storefront/config"
	"goflare.io/storefront/event"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as read-only JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := loadApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.nats != nil {
				if err := a.watchCartActivity(); err != nil {
					return err
				}
			}

			h := api.NewHandler(a.svc, a.cfg.HTTP.RequestTimeout, a.logger)
			srv := &http.Server{
				Addr:         a.cfg.HTTP.Addr,
				Handler:      api.NewRouter(h, a.logger, a.cfg.HTTP.RequestTimeout),
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  60 * time.Second,
			}
			return a.serve(ctx, srv)
		},
	}
}

func (a *app) serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Storefront API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	a.logger.Info("Server exited")
	return nil
}

// watchCartActivity logs cart events published by terminal clients.
func (a *app) watchCartActivity() error {
	var repo event.Repository = event.NewMemoryRepository()
	if a.cfg.Storage.Driver == config.StorageRedis {
		if client, err := a.redisClient(context.Background()); err == nil {
			repo = event.NewRedisRepository(client, 24*time.Hour)
		} else {
			a.logger.Warn("Event dedup falls back to memory", zap.Error(err))
		}
	}

	em := event.NewEventManager(a.nats, repo, a.logger)
	event.NewActivity(a.logger).Register(em)

	wp := event.NewWorkerPool(a.cfg.NATS.Workers, em, a.logger)
	sub, err := em.SubscribeToEvents(wp)
	if err != nil {
		wp.Shutdown()
		return err
	}
	// unsubscribe first so no task is submitted after the pool closes
	a.closers = append(a.closers, wp.Shutdown, func() { _ = sub.Unsubscribe() })
	return nil
}
