package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/FACorreiaa/trip-attractions-api/app/observability/metrics"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/attractions"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/generator"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/geocode"
	"github.com/FACorreiaa/trip-attractions-api/internal/api/health"
	"github.com/FACorreiaa/trip-attractions-api/internal/client"
	api "github.com/FACorreiaa/trip-attractions-api/internal/router"
)

// stubGeocoder resolves every city-center query and misses exact ones,
// keeping e2e runs offline.
type stubGeocoder struct{}

func (stubGeocoder) Geocode(_ context.Context, query string) (geocode.Point, bool, error) {
	switch query {
	case "London":
		return geocode.Point{Lat: 51.5074, Lng: -0.1278}, true, nil
	case "British Museum, London":
		return geocode.Point{Lat: 51.5194, Lng: -0.1270}, true, nil
	}
	return geocode.Point{}, false, nil
}

// E2ETestSuite exercises the wire API end to end: router, handlers,
// generator and the Go client.
type E2ETestSuite struct {
	suite.Suite
	server *httptest.Server
	client *client.Client
	logger *slog.Logger
}

func (s *E2ETestSuite) SetupSuite() {
	metrics.InitAppMetrics()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	tagger := generator.NewProseTagger()
	rng := generator.NewRand(42)
	classifier := generator.NewClassifier(rng)
	extractor := generator.NewCityExtractor(tagger, s.logger)
	synthesizer := generator.NewNameSynthesizer(tagger, s.logger)
	enricher := generator.NewEnricher(stubGeocoder{}, classifier, rng, s.logger)
	generatorService := generator.NewServiceImpl(extractor, synthesizer, enricher, 4, s.logger)

	router := api.SetupRouter(&api.Config{
		AttractionsHandler: attractions.NewHandler(generatorService, s.logger),
		HealthHandler:      health.NewHandler("trip-attractions-api", "1.0.0", s.logger),
	})

	s.server = httptest.NewServer(router)
	s.client = client.New(s.server.URL, s.logger)
}

func (s *E2ETestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *E2ETestSuite) TestHealthEndpoint() {
	status, err := s.client.CheckHealth(context.Background())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "healthy", status.Status)
	assert.Equal(s.T(), "trip-attractions-api", status.Service)

	_, err = time.Parse(time.RFC3339, status.Timestamp)
	assert.NoError(s.T(), err)
}

func (s *E2ETestSuite) TestPingEndpoint() {
	resp, err := http.Get(fmt.Sprintf("%s/ping", s.server.URL))
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode)
}

func (s *E2ETestSuite) TestGenerateAttractionsForLondon() {
	attractionList, err := s.client.FetchAttractions(context.Background(), client.FetchParams{
		Cities:   "London",
		Criteria: "cultural",
		UseAI:    true,
	})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), attractionList)
	assert.LessOrEqual(s.T(), len(attractionList), 15)

	names := make(map[string]bool)
	for _, a := range attractionList {
		assert.False(s.T(), names[a.Name], "duplicate name %s", a.Name)
		names[a.Name] = true
		assert.NotZero(s.T(), a.Latitude)
		assert.GreaterOrEqual(s.T(), a.Rating, 7.5)
		assert.LessOrEqual(s.T(), a.Rating, 9.8)
	}
	assert.True(s.T(), names["Buckingham Palace"])
	assert.True(s.T(), names["London Museum"])
}

func (s *E2ETestSuite) TestMissingCitiesIsBadRequest() {
	resp, err := http.Get(fmt.Sprintf("%s/api/v1/attractions", s.server.URL))
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusBadRequest, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(s.T(), false, payload["success"])
}

func (s *E2ETestSuite) TestUnresolvableCityYieldsEmptyList() {
	attractionList, err := s.client.FetchAttractions(context.Background(), client.FetchParams{
		Cities: "Nowhere",
	})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), attractionList)
}

func TestE2ETestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping e2e tests in short mode")
	}
	suite.Run(t, new(E2ETestSuite))
}
