// Package main is the entry point for the cheapest-itinerary search service.
//
//	@title						Cheapest Itinerary Search API
//	@version					1.0.0
//	@description				Finds the single cheapest direct or one-stop flight itinerary between two airports, synthesizing one-stop connections through major hubs when no direct flight exists.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-deals/cheapest-itinerary-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
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
	_ "github.com/flight-deals/cheapest-itinerary-service/docs"

	itinhttp "github.com/flight-deals/cheapest-itinerary-service/internal/adapter/http"
	"github.com/flight-deals/cheapest-itinerary-service/internal/adapter/http/middleware"
	"github.com/flight-deals/cheapest-itinerary-service/internal/adapter/provider/aerodatabox"
	"github.com/flight-deals/cheapest-itinerary-service/internal/adapter/provider/staticfile"
	"github.com/flight-deals/cheapest-itinerary-service/internal/config"
	"github.com/flight-deals/cheapest-itinerary-service/internal/domain"
	"github.com/flight-deals/cheapest-itinerary-service/internal/infrastructure/logger"
	"github.com/flight-deals/cheapest-itinerary-service/internal/infrastructure/timeutil"
	"github.com/flight-deals/cheapest-itinerary-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("schedules", cfg.Schedules.Provider).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	setupMiddleware(e, cfg, log)

	if err := setupRoutes(e, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up routes")
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupMiddleware configures the middleware chain. The rate limiter slot is
// skipped entirely when throttling is disabled.
func setupMiddleware(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log.Logger))
	if cfg.RateLimit.Enabled {
		e.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			ExpiresIn:         3 * time.Minute,
		}))
	}
	e.Use(middleware.Recover(log.Logger))
}

// setupRoutes wires the schedule provider, use case, and HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) error {
	clock := timeutil.NewRealClock()

	registry := domain.NewProviderRegistry()
	registry.Register(staticfile.NewProvider(cfg.Schedules.StaticFilePath, clock))
	if cfg.Schedules.RapidAPIKey != "" {
		registry.Register(aerodatabox.NewClient(cfg.Schedules.RapidAPIKey, cfg.Schedules.RapidAPIHost))
	}

	providerName := cfg.Schedules.Provider
	if providerName == config.ProviderAeroDataBox {
		providerName = aerodatabox.ProviderName
	} else {
		providerName = staticfile.ProviderName
	}
	schedules, ok := registry.Get(providerName)
	if !ok {
		return fmt.Errorf("schedule provider %q is not registered", providerName)
	}

	log.Info().
		Str("provider", schedules.Name()).
		Strs("registered", registry.Names()).
		Msg("Schedule source selected")

	searchUC := usecase.NewItinerarySearchUseCase(
		schedules,
		usecase.NewAssembler(),
		clock,
		log.Logger,
		&usecase.Config{
			GlobalTimeout:   cfg.Timeouts.GlobalSearch,
			HubFetchTimeout: cfg.Timeouts.HubFetch,
		},
	)

	if cfg.Cache.Enabled {
		searchUC = usecase.NewCachedItinerarySearch(searchUC, cfg.Cache.TTL, log.Logger)
	}

	handler := itinhttp.NewItineraryHandler(searchUC)
	itinhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
