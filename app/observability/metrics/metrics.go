package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	GenerationRequestsTotal   metric.Int64Counter
	GenerationDurationSeconds metric.Float64Histogram
	GeocodeLookupsTotal       metric.Int64Counter
	GeocodeCacheHitsTotal     metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("trip-attractions-api")
		var err error
		m := &AppMetrics{}

		m.GenerationRequestsTotal, err = meter.Int64Counter(
			"generation_requests_total",
			metric.WithDescription("Total number of attraction generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create generation_requests_total: %v", err)
		}

		m.GenerationDurationSeconds, err = meter.Float64Histogram(
			"generation_duration_seconds",
			metric.WithDescription("Duration of attraction generation requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create generation_duration_seconds: %v", err)
		}

		m.GeocodeLookupsTotal, err = meter.Int64Counter(
			"geocode_lookups_total",
			metric.WithDescription("Total number of geocoding lookups by outcome (hit, miss, error)"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_lookups_total: %v", err)
		}

		m.GeocodeCacheHitsTotal, err = meter.Int64Counter(
			"geocode_cache_hits_total",
			metric.WithDescription("Total number of geocoding lookups served from cache"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_cache_hits_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		// This indicates a programming error - InitAppMetrics must be called at startup.
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
