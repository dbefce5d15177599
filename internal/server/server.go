// Package server exposes the ordering engine over HTTP.
//
// Routes:
//
//	GET  /healthz     liveness probe
//	POST /v1/orders   order a show document (JSON or YAML body)
//
// The order endpoint sits behind a redis token bucket when a redis client is
// configured; without one requests pass straight through.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"k8s.io/klog/v2"

	"github.com/danieljhkim/showorder/internal/clock"
	"github.com/danieljhkim/showorder/internal/config"
	"github.com/danieljhkim/showorder/internal/engine"
)

const shutdownTimeout = 10 * time.Second

// Server serves ordering requests.
type Server struct {
	echo   *echo.Echo
	engine *engine.Engine
	cfg    config.ServerConfig
}

// New builds the router. rdb may be nil.
func New(eng *engine.Engine, cfg config.ServerConfig, rdb *redis.Client, clk clock.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, engine: eng, cfg: cfg}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			klog.FromContext(c.Request().Context()).V(2).Info("Request",
				"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	e.GET("/healthz", health)

	v1 := e.Group("/v1")
	v1.POST("/orders", s.order,
		middleware.BodyLimit(cfg.BodyLimit),
		newTokenBucket(cfg.RateLimit, rdb, clk),
	)
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	logger := klog.FromContext(ctx).WithName("server")

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", s.cfg.Addr)
		errCh <- s.echo.Start(s.cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
