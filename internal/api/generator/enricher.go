package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FACorreiaa/trip-attractions-api/internal/api/geocode"
	"github.com/FACorreiaa/trip-attractions-api/internal/types"
)

// jitterBound is the maximum coordinate offset, in degrees, applied to
// city-center approximations so stacked candidates do not share a point.
const jitterBound = 0.05

type resolutionState int

const (
	// resolved: exact geocode hit for "{name}, {city}".
	resolved resolutionState = iota
	// approximated: city-center coordinates plus shared jitter.
	approximated
	// unresolved: both lookups missed; the candidate is dropped.
	unresolved
)

type resolution struct {
	state resolutionState
	lat   float64
	lng   float64
}

// Enricher resolves candidate names to coordinates and assembles complete
// attraction records. Lookup failures are recovered locally: exact miss
// falls back to city center, total miss drops the candidate. No error is
// ever surfaced past the boolean.
type Enricher struct {
	logger     *slog.Logger
	geocoder   geocode.Geocoder
	classifier *Classifier
	rng        Rand
}

func NewEnricher(geocoder geocode.Geocoder, classifier *Classifier, rng Rand, logger *slog.Logger) *Enricher {
	return &Enricher{
		logger:     logger,
		geocoder:   geocoder,
		classifier: classifier,
		rng:        rng,
	}
}

// Resolve builds the full attraction record for name, or reports false when
// neither the exact nor the city-center lookup produced coordinates.
func (e *Enricher) Resolve(ctx context.Context, name, city string) (types.AttractionDetail, bool) {
	loc := e.locate(ctx, name, city)
	if loc.state == unresolved {
		e.logger.DebugContext(ctx, "Dropping unresolvable candidate",
			slog.String("name", name), slog.String("city", city))
		return types.AttractionDetail{}, false
	}

	category := e.classifier.Category(name)
	// The approximated path describes the attraction under the generic
	// label while the category field keeps the name-derived one.
	descCategory := category
	if loc.state == approximated {
		descCategory = CategoryDefault
	}

	return types.AttractionDetail{
		ID:            uuid.New(),
		Name:          name,
		Description:   e.classifier.Description(name, city, descCategory),
		Latitude:      loc.lat,
		Longitude:     loc.lng,
		Category:      category,
		Rating:        e.classifier.Rating(name),
		VisitDuration: e.classifier.VisitDuration(name),
		BestTime:      e.classifier.BestTime(name),
	}, true
}

// locate runs the exact-then-city-fallback lookup sequence. One jitter value
// is drawn per approximation and applied to both axes.
func (e *Enricher) locate(ctx context.Context, name, city string) resolution {
	pt, found, err := e.geocoder.Geocode(ctx, fmt.Sprintf("%s, %s", name, city))
	if err == nil && found {
		return resolution{state: resolved, lat: pt.Lat, lng: pt.Lng}
	}
	if err != nil {
		e.logger.DebugContext(ctx, "Exact geocode failed, falling back to city center",
			slog.String("name", name), slog.Any("error", err))
	}

	pt, found, err = e.geocoder.Geocode(ctx, city)
	if err == nil && found {
		offset := e.rng.Float64InRange(-jitterBound, jitterBound)
		return resolution{state: approximated, lat: pt.Lat + offset, lng: pt.Lng + offset}
	}

	return resolution{state: unresolved}
}
