package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// API Docs: https://open-meteo.com/en/docs/geocoding-api
// Sample request: https://geocoding-api.open-meteo.com/v1/search?name=Berlin&count=5&language=en&format=json
const (
	BaseGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

type GeocodingClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewGeocodingClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *GeocodingClient {
	if baseURL == "" {
		baseURL = BaseGeocodingURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GeocodingClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-geocoding-client"),
	}
}

// Search returns up to count places matching name, ranked by relevance.
// No match yields an empty slice, not an error.
func (c *GeocodingClient) Search(ctx context.Context, name string, count int) ([]GeocodingResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("language", "en")
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("searching places", "name", name, "count", count)

	var apiResp GeocodingAPIResponse
	if err := getJSON(ctx, c.httpClient, u.String(), &apiResp); err != nil {
		return nil, err
	}
	if apiResp.Results == nil {
		return []GeocodingResult{}, nil
	}
	return apiResp.Results, nil
}
