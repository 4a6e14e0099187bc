package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/trip-attractions-api/internal/api/attractions"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/health"
)

// Config contains dependencies needed for the router setup
type Config struct {
	AttractionsHandler *attractions.Handler
	HealthHandler      *health.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	// Heartbeat endpoint, always public
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Get("/health", cfg.HealthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/attractions", cfg.AttractionsHandler.GetAttractions)
	})

	return r
}
