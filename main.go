package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	appLogger "github.com/FACorreiaa/trip-attractions-api/app/logger"
	"github.com/FACorreiaa/trip-attractions-api/app/observability/metrics"
	"github.com/FACorreiaa/trip-attractions-api/app/tracer"
	"github.com/FACorreiaa/trip-attractions-api/config"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/attractions"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/generator"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/geocode"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/health"
	api "github.com/FACorreiaa/trip-attractions-api/internal/router"
)

func main() {
	// --- Initial Loading ---
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	// --- Logger Setup ---
	logger := setupLogger()
	slog.SetDefault(logger)

	// --- Application Context & Shutdown ---
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Observability ---
	tracer.InitTracingAndMetrics(cfg.Service.Name, cfg.Server.MetricsPort)
	metrics.InitAppMetrics()

	// --- Dependency Injection ---
	// The generator's collaborators are stateless service objects; wire them
	// explicitly so tests can substitute fakes.
	geocodeClient := geocode.NewNominatim(cfg.Geocode.Timeout, cfg.Geocode.CacheTTL, logger)
	tagger := generator.NewProseTagger()
	rng := generator.DefaultRand()
	classifier := generator.NewClassifier(rng)
	extractor := generator.NewCityExtractor(tagger, logger)
	synthesizer := generator.NewNameSynthesizer(tagger, logger)
	enricher := generator.NewEnricher(geocodeClient, classifier, rng, logger)
	generatorService := generator.NewServiceImpl(extractor, synthesizer, enricher, cfg.Geocode.Concurrency, logger)

	attractionsHandler := attractions.NewHandler(generatorService, logger)
	healthHandler := health.NewHandler(cfg.Service.Name, cfg.Service.Version, logger)

	// --- Router Setup ---
	routerConfig := &api.Config{
		AttractionsHandler: attractionsHandler,
		HealthHandler:      healthHandler,
	}
	mainRouter := api.SetupRouter(routerConfig)

	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(appLogger.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(cfg.Server.Timeout))
	router.Use(middleware.Compress(5, "application/json"))
	router.Mount("/", mainRouter)

	// --- HTTP Server Setup ---
	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	// --- Start Server Goroutine ---
	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel() // Trigger shutdown if server fails unexpectedly
		}
	}()

	// --- Wait for Shutdown Signal ---
	<-ctx.Done()

	// --- Graceful Shutdown ---
	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" { // Default to development if not set
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production or other environments
		jsonOpts := &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
