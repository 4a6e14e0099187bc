package attractions

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/trip-attractions-api/internal/api"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/generator"
	"github.com/FACorreiaa/trip-attractions-api/internal/types"
)

type Handler struct {
	logger           *slog.Logger
	generatorService generator.Service
}

func NewHandler(generatorService generator.Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:           logger,
		generatorService: generatorService,
	}
}

// GetAttractions handles GET /api/v1/attractions. The cities parameter is a
// comma-separated list; attractions are generated per city and concatenated
// in request order. provider and use_ai are accepted for wire parity with
// the mobile client; the on-device style generator is this service's only
// provider.
func (h *Handler) GetAttractions(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AttractionsHandler").Start(r.Context(), "GetAttractions", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/attractions"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetAttractions"))

	q := r.URL.Query()
	citiesParam := q.Get("cities")
	if strings.TrimSpace(citiesParam) == "" {
		l.WarnContext(ctx, "Missing cities parameter")
		api.ErrorResponse(w, r, http.StatusBadRequest, "cities parameter is required")
		return
	}

	startDate := q.Get("start_date")
	endDate := q.Get("end_date")
	criteria := q.Get("criteria")
	provider := q.Get("provider")
	useAI, _ := strconv.ParseBool(q.Get("use_ai"))
	l.DebugContext(ctx, "Attractions request",
		slog.String("cities", citiesParam),
		slog.String("criteria", criteria),
		slog.String("provider", provider),
		slog.Bool("use_ai", useAI),
	)

	results := make([]types.AttractionWire, 0)
	for _, city := range strings.Split(citiesParam, ",") {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}
		attractions, err := h.generatorService.GenerateAttractions(ctx, city, startDate, endDate, criteria)
		if err != nil {
			l.ErrorContext(ctx, "Failed to generate attractions", slog.String("city", city), slog.Any("error", err))
			span.RecordError(err)
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate attractions")
			return
		}
		for _, a := range attractions {
			results = append(results, a.Wire())
		}
	}

	api.WriteJSONResponse(w, r, http.StatusOK, results)
}
