// Package main provides the entrypoint for the lobby board dashboard server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/lobbyboard/lobbyboard/internal/api"
	"github.com/lobbyboard/lobbyboard/internal/api/middleware"
	"github.com/lobbyboard/lobbyboard/internal/bikes"
	"github.com/lobbyboard/lobbyboard/internal/bikes/gbfs"
	"github.com/lobbyboard/lobbyboard/internal/board"
	"github.com/lobbyboard/lobbyboard/internal/board/views"
	"github.com/lobbyboard/lobbyboard/internal/config"
	"github.com/lobbyboard/lobbyboard/internal/menu"
	"github.com/lobbyboard/lobbyboard/internal/menu/cafemenu"
	"github.com/lobbyboard/lobbyboard/internal/provider/resilience"
	"github.com/lobbyboard/lobbyboard/internal/scheduler"
	"github.com/lobbyboard/lobbyboard/internal/telemetry"
	"github.com/lobbyboard/lobbyboard/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "lobbyboard"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting lobby board")

	cfg := config.FromEnv()

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Load the dashboard page template
	if err := views.LoadTemplates(); err != nil {
		log.Fatal().Err(err).Msg("failed to load dashboard templates")
	}

	if cfg.WeatherAPIKey == "" {
		log.Warn().Msg("WEATHER_API_KEY not set - weather region will render unavailable")
	}

	// Provider clients. Pollers run without in-cycle retries or client
	// timeouts; the poll schedule itself is the retry loop.
	registry := resilience.NewRegistry()

	newPollerClient := func(name string) *resilience.Client {
		clientCfg := resilience.PollerClientConfig(name)
		clientCfg.CircuitBreaker.OnStateChange = resilience.LogStateChange(log)
		client := resilience.NewClient(clientCfg)
		registry.Register(name, client)
		return client
	}

	gbfsClient := gbfs.NewClient(gbfs.ClientConfig{
		FeedURL:    cfg.BikeFeedURL,
		HTTPClient: newPollerClient(gbfs.ProviderName),
	})
	menuClient := cafemenu.NewClient(cafemenu.ClientConfig{
		URL:        cfg.MenuURL,
		HTTPClient: newPollerClient(cafemenu.ProviderName),
	})
	weatherClient := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     cfg.WeatherAPIKey,
		BaseURL:    cfg.WeatherBaseURL,
		HTTPClient: newPollerClient(openweathermap.ProviderName),
	})

	bikeService := bikes.NewService(bikes.ServiceConfig{
		Provider: gbfsClient,
		Logger:   log,
	})
	menuService := menu.NewService(menu.ServiceConfig{
		Provider: menuClient,
		Logger:   log,
	})
	log.Info().Msg("provider clients initialized")

	// The board and its pollers
	b := board.New(cfg.StationIDs)

	runner, err := scheduler.NewRunner(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize scheduler")
	}

	runner.Add(board.ClockTask(b, cfg.ClockInterval, time.Now))
	for _, stationID := range cfg.StationIDs {
		runner.Add(board.StationTask(board.StationTaskConfig{
			Board:        b,
			Service:      bikeService,
			StationID:    stationID,
			Interval:     cfg.BikeInterval,
			Logger:       log,
			Registry:     registry,
			ProviderName: gbfs.ProviderName,
		}))
	}
	runner.Add(board.MenuTask(board.MenuTaskConfig{
		Board:        b,
		Service:      menuService,
		Logger:       log,
		Registry:     registry,
		ProviderName: cafemenu.ProviderName,
	}))
	runner.Add(board.WeatherTask(board.WeatherTaskConfig{
		Board:        b,
		Provider:     weatherClient,
		Lat:          cfg.Latitude,
		Lon:          cfg.Longitude,
		Interval:     cfg.WeatherInterval,
		Logger:       log,
		Registry:     registry,
		ProviderName: openweathermap.ProviderName,
	}))

	pollCtx, stopPolling := context.WithCancel(ctx)
	runner.Start(pollCtx)
	log.Info().
		Strs("stations", cfg.StationIDs).
		Dur("bike_interval", cfg.BikeInterval).
		Dur("weather_interval", cfg.WeatherInterval).
		Msg("pollers started")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:     Version,
		BuildTime:   BuildTime,
		Logger:      log,
		ServiceName: serviceName,
		Metrics:     metrics,
		Board:       b,
		Registry:    registry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	stopPolling()

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	runner.Wait()
	log.Info().Msg("server stopped")
}
