package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"TronLens/pkg/config"
	xhttp "TronLens/pkg/http"
	applogger "TronLens/pkg/logger"
)

// App encapsulates the service lifecycle: start the HTTP server, wait for a
// shutdown signal, drain connections.
type App struct {
	cfg        *config.Config
	httpServer *xhttp.Server
	logger     *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, srv *xhttp.Server, l *applogger.Logger) *App {
	if l == nil {
		l = applogger.Nop()
	}
	return &App{cfg: cfg, httpServer: srv, logger: l}
}

// Run blocks until SIGINT/SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the server and blocks until ctx is done.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("tronlens started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("upstream", a.cfg.TronScan.BaseURL),
		applogger.Bool("api_key", a.cfg.TronScan.APIKey != ""),
		applogger.String("cache", a.cfg.Cache.Backend),
		applogger.Duration("cache_ttl", a.cfg.Cache.TTL),
	)

	<-ctx.Done()
	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	timeout := a.httpServer.ShutdownTimeout()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}
