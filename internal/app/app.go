package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mashiahd/http-mock/internal/config"
	"github.com/mashiahd/http-mock/internal/handler"
	log "github.com/sirupsen/logrus"
)

const (
	shutdownTimeout = 30 * time.Second
	readTimeout     = 30 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
)

type App struct {
	cfg     *config.Config
	logger  *log.Logger
	handler http.Handler
	server  *http.Server
}

// New wires the dispatcher into an HTTP server. Nothing is bound until Run.
func New(cfg *config.Config, logger *log.Logger, console io.Writer) (*App, error) {
	dispatcher := handler.NewDispatcher(cfg, logger, console)
	h, err := dispatcher.Handler()
	if err != nil {
		return nil, fmt.Errorf("building handler: %w", err)
	}

	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: h,
		server: &http.Server{
			Addr:         cfg.Address(),
			Handler:      h,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Run listens on the configured address and serves until ctx is cancelled
// or the process receives SIGINT or SIGTERM.
func (a *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go a.startServer(listener, errCh)

	return a.waitForShutdown(ctx, errCh)
}

func (a *App) startServer(listener net.Listener, errCh chan<- error) {
	a.logger.WithFields(log.Fields{
		"component": "server",
		"address":   listener.Addr().String(),
	}).Info("http server listening")

	if err := a.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- fmt.Errorf("serving http: %w", err)
	}
	close(errCh)
}

func (a *App) waitForShutdown(ctx context.Context, errCh <-chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case err, ok := <-errCh:
		if ok {
			a.logger.WithFields(log.Fields{
				"component": "server",
				"error":     err,
			}).Error("http server failed")
			return err
		}
		return nil
	case <-ctx.Done():
		a.logger.WithField("reason", "context_cancelled").Info("initiating graceful shutdown")
	case sig := <-sigChan:
		a.logger.WithField("signal", sig).Info("received shutdown signal")
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithFields(log.Fields{
			"component": "server",
			"error":     err,
		}).Error("http server shutdown failed")
		return fmt.Errorf("shutting down server: %w", err)
	}

	a.logger.Info("graceful shutdown completed")
	return nil
}
