// Package client provides a thin Go client for the attractions wire API:
// GET /health and GET /api/v1/attractions.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/FACorreiaa/trip-attractions-api/internal/types"
)

// FetchParams are the query parameters accepted by /api/v1/attractions.
// Empty optional fields are omitted from the query; UseAI is always sent.
type FetchParams struct {
	StartDate string
	EndDate   string
	Criteria  string
	Cities    string
	Provider  string
	UseAI     bool
}

type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		logger:  logger,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CheckHealth calls GET /health.
func (c *Client) CheckHealth(ctx context.Context) (*types.HealthStatus, error) {
	var status types.HealthStatus
	if err := c.getJSON(ctx, c.baseURL+"/health", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// FetchAttractions calls GET /api/v1/attractions and rebuilds the in-memory
// records, minting a fresh ID per decoded record.
func (c *Client) FetchAttractions(ctx context.Context, params FetchParams) ([]types.AttractionDetail, error) {
	query := url.Values{}
	if params.StartDate != "" {
		query.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("end_date", params.EndDate)
	}
	if params.Criteria != "" {
		query.Set("criteria", params.Criteria)
	}
	if params.Cities != "" {
		query.Set("cities", params.Cities)
	}
	if params.Provider != "" {
		query.Set("provider", params.Provider)
	}
	query.Set("use_ai", strconv.FormatBool(params.UseAI))

	var wire []types.AttractionWire
	if err := c.getJSON(ctx, c.baseURL+"/api/v1/attractions?"+query.Encode(), &wire); err != nil {
		return nil, err
	}

	attractions := make([]types.AttractionDetail, 0, len(wire))
	for _, w := range wire {
		attractions = append(attractions, w.Detail())
	}
	return attractions, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.DebugContext(ctx, "Unexpected status from API",
			slog.String("url", rawURL), slog.Int("status", resp.StatusCode))
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
