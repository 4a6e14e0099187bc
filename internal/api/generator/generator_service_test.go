package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/trip-attractions-api/app/observability/metrics"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/geocode"
)

func newServiceForTest(t *testing.T, tagger Tagger, g geocode.Geocoder) *ServiceImpl {
	t.Helper()
	metrics.InitAppMetrics()
	logger := testLogger()
	rng := NewRand(42)
	return NewServiceImpl(
		NewCityExtractor(tagger, logger),
		NewNameSynthesizer(tagger, logger),
		NewEnricher(g, NewClassifier(rng), rng, logger),
		4,
		logger,
	)
}

func TestGenerateAttractionsLondonCultural(t *testing.T) {
	tagger := new(MockTagger)
	tagger.On("PlaceNames", "london").Return([]string{"london"}, nil)
	tagger.On("Keywords", "cultural").Return([]string{"cultural"}, nil)

	g := &fakeGeocoder{fn: func(query string) (geocode.Point, bool, error) {
		switch query {
		case "British Museum, London":
			return geocode.Point{Lat: 51.5194, Lng: -0.1270}, true, nil
		case "London":
			return geocode.Point{Lat: 51.5074, Lng: -0.1278}, true, nil
		default:
			return geocode.Point{}, false, nil
		}
	}}

	service := newServiceForTest(t, tagger, g)
	attractions, err := service.GenerateAttractions(context.Background(), "london", "", "", "cultural")
	require.NoError(t, err)
	require.NotEmpty(t, attractions)
	assert.LessOrEqual(t, len(attractions), 15)

	byName := make(map[string]int)
	for _, a := range attractions {
		byName[a.Name]++
	}
	for name, count := range byName {
		assert.Equal(t, 1, count, "duplicate attraction %s", name)
	}

	require.Contains(t, byName, "London Museum")
	require.Contains(t, byName, "British Museum")
	for _, a := range attractions {
		switch a.Name {
		case "London Museum":
			assert.Equal(t, CategoryCultural, a.Category)
		case "British Museum":
			assert.InDelta(t, 51.5, a.Latitude, 0.3)
			assert.InDelta(t, -0.1, a.Longitude, 0.3)
		}
	}
}

func TestGenerateAttractionsPreservesCandidateOrder(t *testing.T) {
	tagger := new(MockTagger)
	tagger.On("PlaceNames", "Sydney").Return([]string{"Sydney"}, nil)

	g := &fakeGeocoder{fn: func(query string) (geocode.Point, bool, error) {
		if query == "Sydney" {
			return geocode.Point{Lat: -33.87, Lng: 151.21}, true, nil
		}
		return geocode.Point{}, false, nil
	}}

	service := newServiceForTest(t, tagger, g)
	attractions, err := service.GenerateAttractions(context.Background(), "Sydney", "", "", "")
	require.NoError(t, err)

	expected := NewNameSynthesizer(new(MockTagger), testLogger()).Synthesize("Sydney", "")
	require.Len(t, attractions, len(expected))
	for i, a := range attractions {
		assert.Equal(t, expected[i], a.Name)
	}
}

func TestGenerateAttractionsDropsUnresolvableCandidates(t *testing.T) {
	tagger := new(MockTagger)
	tagger.On("PlaceNames", "Unknownville").Return([]string{"Unknownville"}, nil)

	// Every exact lookup resolves except the zoo; the city-center fallback
	// also misses, so exactly one candidate is dropped.
	g := &fakeGeocoder{fn: func(query string) (geocode.Point, bool, error) {
		if query == "Unknownville" || strings.HasPrefix(query, "Unknownville Zoo") {
			return geocode.Point{}, false, nil
		}
		return geocode.Point{Lat: 48.1, Lng: 11.5}, true, nil
	}}

	service := newServiceForTest(t, tagger, g)
	attractions, err := service.GenerateAttractions(context.Background(), "Unknownville", "", "", "")
	require.NoError(t, err)

	candidates := NewNameSynthesizer(new(MockTagger), testLogger()).Synthesize("Unknownville", "")
	assert.Len(t, attractions, len(candidates)-1)
	for _, a := range attractions {
		assert.NotEqual(t, "Unknownville Zoo", a.Name)
	}
}

func TestGenerateAttractionsTotalFailureYieldsEmptyList(t *testing.T) {
	tagger := new(MockTagger)
	tagger.On("PlaceNames", "Nowhere").Return([]string{"Nowhere"}, nil)

	g := &fakeGeocoder{fn: func(query string) (geocode.Point, bool, error) {
		return geocode.Point{}, false, assert.AnError
	}}

	service := newServiceForTest(t, tagger, g)
	attractions, err := service.GenerateAttractions(context.Background(), "Nowhere", "", "", "")

	// Worst case is an empty list, never an error
	require.NoError(t, err)
	assert.Empty(t, attractions)
}

func TestGenerateAttractionsHonorsCancellation(t *testing.T) {
	tagger := new(MockTagger)
	tagger.On("PlaceNames", "London").Return([]string{"London"}, nil)

	g := &fakeGeocoder{fn: func(query string) (geocode.Point, bool, error) {
		return geocode.Point{Lat: 51.5, Lng: -0.1}, true, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := newServiceForTest(t, tagger, g)
	_, err := service.GenerateAttractions(ctx, "London", "", "", "")
	assert.ErrorIs(t, err, context.Canceled)
}
