package generator

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/trip-attractions-api/app/observability/metrics"
	"github.com/FACorreiaa/trip-attractions-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for attraction generation.
type Service interface {
	GenerateAttractions(ctx context.Context, city, startDate, endDate, criteria string) ([]types.AttractionDetail, error)
}

// ServiceImpl orchestrates extraction, synthesis, enrichment and
// classification into a ranked attraction list.
type ServiceImpl struct {
	logger      *slog.Logger
	extractor   *CityExtractor
	synthesizer *NameSynthesizer
	enricher    *Enricher
	concurrency int
}

func NewServiceImpl(extractor *CityExtractor, synthesizer *NameSynthesizer, enricher *Enricher, concurrency int, logger *slog.Logger) *ServiceImpl {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ServiceImpl{
		logger:      logger,
		extractor:   extractor,
		synthesizer: synthesizer,
		enricher:    enricher,
		concurrency: concurrency,
	}
}

// GenerateAttractions produces the attraction list for city. Candidates are
// resolved concurrently but the final order always follows candidate order.
// startDate and endDate are accepted for interface parity with the remote
// fetch surface; no generation rule uses them. The only error returned is
// context cancellation; unresolvable candidates are silently dropped.
func (s *ServiceImpl) GenerateAttractions(ctx context.Context, city, startDate, endDate, criteria string) ([]types.AttractionDetail, error) {
	ctx, span := otel.Tracer("GeneratorService").Start(ctx, "GenerateAttractions", trace.WithAttributes(
		attribute.String("city", city),
	))
	defer span.End()

	start := time.Now()
	l := s.logger.With(slog.String("city", city))
	l.DebugContext(ctx, "Generating attractions",
		slog.String("criteria", criteria),
		slog.String("start_date", startDate),
		slog.String("end_date", endDate),
	)

	canonical := s.extractor.Extract(city)
	names := s.synthesizer.Synthesize(canonical, criteria)
	span.SetAttributes(
		attribute.String("city.canonical", canonical),
		attribute.Int("candidates", len(names)),
	)

	resolvedByIndex := make([]*types.AttractionDetail, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if attraction, ok := s.enricher.Resolve(gctx, name, canonical); ok {
				resolvedByIndex[i] = &attraction
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation cancelled")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "Generation cancelled")
		return nil, err
	}

	attractions := make([]types.AttractionDetail, 0, len(names))
	for _, a := range resolvedByIndex {
		if a != nil {
			attractions = append(attractions, *a)
		}
	}

	m := metrics.Get()
	m.GenerationRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("city", canonical)))
	m.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())

	l.InfoContext(ctx, "Generated attractions",
		slog.String("canonical_city", canonical),
		slog.Int("candidates", len(names)),
		slog.Int("resolved", len(attractions)),
		slog.Duration("latency", time.Since(start)),
	)
	span.SetStatus(codes.Ok, "Attractions generated")
	return attractions, nil
}
