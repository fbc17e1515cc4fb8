// Package server runs the development server: the simulated accounts API
// served over a real HTTP listener so that other clients can share it.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/store"
	"github.com/dmitrijs2005/gophaccounts/internal/identity"
	"github.com/dmitrijs2005/gophaccounts/internal/logging"
	"github.com/dmitrijs2005/gophaccounts/internal/server/config"
)

type App struct {
	config *config.Config
	logger logging.Logger
	slot   slot.Slot
	api    *fakebackend.Router
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.Debug)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	s, err := slot.Open(ctx, c.Storage)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	st, err := store.Open(ctx, s)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("store init error: %w", err)
	}

	profiles := identity.NewProfileClient(c.GraphURL, nil)
	api := fakebackend.New(st, profiles, logger)

	return &App{config: c, logger: logger, slot: s, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run listens on the configured address until ctx is cancelled or a
// termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen error: %w", err)
	}
	return app.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully and
// closes the storage slot.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	defer func() {
		if err := app.slot.Close(); err != nil {
			app.logger.Error(ctx, "storage close error", "error", err)
		}
	}()

	srv := &http.Server{Handler: app.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	app.logger.Info(ctx, "server listening", "addr", ln.Addr().String(), "storage", app.config.Storage.Backend)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "stopping http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	app.logger.Info(ctx, "http server stopped")
	return nil
}
