// Package server публикует инструменты кредитного калькулятора по HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/config"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
)

// Server HTTP сервер над реестром инструментов
type Server struct {
	echo    *echo.Echo
	cfg     *config.Config
	log     zerolog.Logger
	limiter *limiterStore
}

// New создает сервер с зарегистрированными маршрутами и middleware
func New(cfg *config.Config, registry map[string]tools.ToolHandler, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// IP только из соединения, X-Forwarded-For не учитывается
	e.IPExtractor = echo.ExtractIPDirect()

	limiter := newLimiterStore(cfg.RateLimitRPS, cfg.RateLimitBurst, visitorTTL)

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(limiter.middleware())

	h := &toolHandler{registry: registry, log: log}

	e.GET("/health", health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/tools", h.List)
	e.POST("/tools/:name", h.Call)

	return &Server{echo: e, cfg: cfg, log: log, limiter: limiter}
}

// Handler возвращает http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает сервер
func (s *Server) Run(ctx context.Context) error {
	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go s.limiter.cleanup(cleanupCtx, cleanupInterval)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server starting")
		if err := s.echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
