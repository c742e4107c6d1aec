// Package app wires together core, transport, and the ops surface.
package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/relaykit/linechat/internal/config"
	"github.com/relaykit/linechat/internal/core"
	"github.com/relaykit/linechat/internal/transport/tcp"
)

// App owns the chat server and the optional ops HTTP server.
type App struct {
	cfg  config.Config
	log  *zerolog.Logger
	chat *tcp.Server
	ops  *stdhttp.Server
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	reg := core.NewRegistry()
	router := core.NewRouter(reg, logger)
	disp := core.NewDispatcher(reg, router, logger)
	chat := tcp.NewServer(cfg, reg, disp, router, logger)

	var ops *stdhttp.Server
	if cfg.OpsAddr != "" {
		gin.SetMode(gin.ReleaseMode)
		engine := gin.New()
		engine.GET("/health", func(c *gin.Context) {
			c.String(stdhttp.StatusOK, "ok")
		})
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

		ops = &stdhttp.Server{
			Addr:              cfg.OpsAddr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return &App{
		cfg:  cfg,
		log:  logger,
		chat: chat,
		ops:  ops,
	}
}

// Run starts both servers and blocks until context cancellation or a fatal
// error. On cancellation the chat listener and all sessions are closed and
// handler goroutines are drained before returning.
func (a *App) Run(ctx context.Context) error {
	if err := a.chat.Listen(); err != nil {
		return err
	}
	a.log.Info().
		Str("addr", a.chat.Addr().String()).
		Dur("idle_timeout", a.cfg.IdleTimeout).
		Msg("chat server listening")

	chatErr := make(chan error, 1)
	go func() {
		chatErr <- a.chat.Serve(ctx)
	}()

	opsErr := make(chan error, 1)
	if a.ops != nil {
		a.log.Info().Str("addr", a.ops.Addr).Msg("ops server listening")
		go func() {
			if err := a.ops.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
				opsErr <- err
			}
		}()
	}

	select {
	case err := <-chatErr:
		a.shutdownOps()
		return err
	case err := <-opsErr:
		return fmt.Errorf("ops server: %w", err)
	case <-ctx.Done():
		a.log.Info().Msg("shutting down")
		a.shutdownOps()
		return <-chatErr
	}
}

func (a *App) shutdownOps() {
	if a.ops == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.ops.Shutdown(shutdownCtx); err != nil {
		a.log.Warn().Err(err).Msg("failed to shut down ops server")
	}
}
