package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/trip-attractions-api/app/observability/metrics"
)

// Point is a WGS-84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// Geocoder resolves a free-text query to coordinates. The boolean reports
// whether the query produced a result; a false return with a nil error is a
// plain lookup miss, not a failure.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Point, bool, error)
}

var _ Geocoder = (*Client)(nil)

// Client wraps an external geocoding provider with a per-lookup timeout,
// a TTL result cache and a circuit breaker. An open breaker reads as a
// lookup miss upstream; the generator never retries beyond its own
// exact-then-city fallback sequence.
type Client struct {
	logger   *slog.Logger
	provider geo.Geocoder
	breaker  *gobreaker.CircuitBreaker[*geo.Location]
	cache    *cache.Cache
	timeout  time.Duration
}

// New builds a Client around the given provider.
func New(provider geo.Geocoder, timeout, cacheTTL time.Duration, logger *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[*geo.Location](gobreaker.Settings{
		Name:    "geocode",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Geocode circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return &Client{
		logger:   logger,
		provider: provider,
		breaker:  breaker,
		cache:    cache.New(cacheTTL, 1*time.Hour),
		timeout:  timeout,
	}
}

// NewNominatim builds a Client backed by OpenStreetMap's Nominatim service.
func NewNominatim(timeout, cacheTTL time.Duration, logger *slog.Logger) *Client {
	return New(openstreetmap.Geocoder(), timeout, cacheTTL, logger)
}

type lookupResult struct {
	loc *geo.Location
	err error
}

// Geocode resolves query against the provider. Results are cached by query;
// the context bounds the wait for the provider round trip.
func (c *Client) Geocode(ctx context.Context, query string) (Point, bool, error) {
	ctx, span := otel.Tracer("GeocodeClient").Start(ctx, "Geocode", trace.WithAttributes(
		attribute.String("geocode.query", query),
	))
	defer span.End()

	m := metrics.Get()

	if cached, found := c.cache.Get(query); found {
		m.GeocodeCacheHitsTotal.Add(ctx, 1)
		span.SetStatus(codes.Ok, "Served from cache")
		return cached.(Point), true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// The provider has no context support; run the lookup on the side and
	// abandon the result if the caller gives up first.
	ch := make(chan lookupResult, 1)
	go func() {
		loc, err := c.breaker.Execute(func() (*geo.Location, error) {
			return c.provider.Geocode(query)
		})
		ch <- lookupResult{loc: loc, err: err}
	}()

	select {
	case <-ctx.Done():
		span.SetStatus(codes.Error, "Lookup abandoned")
		m.GeocodeLookupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		return Point{}, false, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, gobreaker.ErrOpenState) || errors.Is(res.err, gobreaker.ErrTooManyRequests) {
				c.logger.DebugContext(ctx, "Geocode short-circuited by open breaker", slog.String("query", query))
			}
			span.RecordError(res.err)
			span.SetStatus(codes.Error, "Lookup failed")
			m.GeocodeLookupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
			return Point{}, false, fmt.Errorf("geocode %q: %w", query, res.err)
		}
		if res.loc == nil {
			span.SetStatus(codes.Ok, "No result")
			m.GeocodeLookupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "miss")))
			return Point{}, false, nil
		}
		pt := Point{Lat: res.loc.Lat, Lng: res.loc.Lng}
		c.cache.Set(query, pt, cache.DefaultExpiration)
		span.SetStatus(codes.Ok, "Resolved")
		m.GeocodeLookupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "hit")))
		return pt, true, nil
	}
}
