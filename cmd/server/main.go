// Package main is the entry point for the route finder HTTP service.
//
//	@title						Airfare Route Finder API
//	@version					1.0.0
//	@description				Search sessions over a connection lookup service: pick two cities and a ranking preference, run the search, read the settled result.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/airfare-routefinder/route-finder/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/airfare-routefinder/route-finder/docs"

	// Application layers
	findhttp "github.com/airfare-routefinder/route-finder/internal/adapter/http"
	"github.com/airfare-routefinder/route-finder/internal/adapter/http/middleware"
	"github.com/airfare-routefinder/route-finder/internal/app"
	"github.com/airfare-routefinder/route-finder/internal/config"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/logger"
	"github.com/airfare-routefinder/route-finder/internal/infrastructure/metrics"
	"github.com/airfare-routefinder/route-finder/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 5 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(app.LoggerConfig(cfg))
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	components, err := app.Build(startCtx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize")
	}

	// Metrics are optional; nil interfaces keep every observer hook switched off
	var (
		m               *metrics.Metrics
		searchObserver  usecase.SearchObserver
		sessionObserver usecase.SessionObserver
		requestObserver middleware.RequestObserver
	)
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics(cfg.Metrics.Namespace)
		searchObserver, sessionObserver, requestObserver = m, m, m
	}

	sessions := usecase.NewSessionRegistry(
		components.ControllerFactory(searchObserver),
		&usecase.SessionConfig{TTL: cfg.Session.TTL},
		sessionObserver,
		log.WithComponent(logger.ComponentSessions),
	)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		sessions.Run(janitorCtx, cfg.Session.SweepInterval)
	}()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log, requestObserver)
	setupRoutes(e, findhttp.NewSearchHandler(sessions, components.Catalog, log.WithComponent(logger.ComponentHTTP)), m)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)

	stopJanitor()
	<-janitorDone
	log.Info().Msg("Sessions closed")
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, h *findhttp.SearchHandler, m *metrics.Metrics) {
	findhttp.RegisterRoutes(e, h)

	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
// It logs through the global logger set in main.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
