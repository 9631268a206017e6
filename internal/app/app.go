// Package app wires configuration, catalog, theme, controller and the HTTP
// presenter into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-dynform/internal/config"
	"github.com/goliatone/go-dynform/internal/httpserver"
	"github.com/goliatone/go-dynform/pkg/controller"
	"github.com/goliatone/go-dynform/pkg/render"
	"github.com/goliatone/go-dynform/pkg/renderers/vanilla"
)

const shutdownTimeout = 10 * time.Second

// Run serves the dynamic form until ctx is cancelled or the process
// receives SIGINT/SIGTERM.
func Run(ctx context.Context, opts ...Option) error {
	a := &application{logOut: os.Stdout}
	for _, opt := range opts {
		opt(a)
	}
	if a.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := a.config

	logger := NewLogger(cfg.App, a.logOut)
	slog.SetDefault(logger)

	catalog, err := BuildCatalog(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	themeCfg, err := BuildTheme(cfg.Theme)
	if err != nil {
		return fmt.Errorf("resolve theme: %w", err)
	}

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.HTTP.Address()),
		slog.Any("form_types", catalog.FormTypes()),
		slog.String("theme", themeCfg.Theme),
		slog.String("variant", themeCfg.Variant),
		slog.String("templates_dir", cfg.HTTP.TemplatesDir),
		slog.String("log_level", cfg.App.LogLevel.String()))

	renderers, err := BuildRenderers(cfg.HTTP)
	if err != nil {
		return fmt.Errorf("build renderers: %w", err)
	}

	ctrl := controller.New(catalog, controller.WithLogger(logger))
	srv, err := httpserver.New(ctrl, catalog,
		httpserver.WithLogger(logger),
		httpserver.WithRenderers(renderers),
		httpserver.WithTheme(themeCfg),
		httpserver.WithTitle(cfg.HTTP.Title),
	)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Address(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if a.listener != nil {
			logger.Info("Starting HTTP server", slog.String("address", a.listener.Addr().String()))
			err = httpServer.Serve(a.listener)
		} else {
			logger.Info("Starting HTTP server", slog.String("address", httpServer.Addr))
			err = httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// BuildRenderers registers the presenters' renderers, loading HTML templates
// from cfg.TemplatesDir when it is set.
func BuildRenderers(cfg config.HTTPConfig) (*render.Registry, error) {
	var options []vanilla.Option
	if cfg.TemplatesDir != "" {
		options = append(options, vanilla.WithTemplatesDir(cfg.TemplatesDir))
	}
	return httpserver.DefaultRenderers(options...)
}
