package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.41&hourly=temperature_2m,wind_speed_10m,weather_code&daily=temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code&timezone=auto&forecast_days=8&wind_speed_unit=ms
const (
	BaseForecastURL = "https://api.open-meteo.com/v1/forecast"

	// TimezoneAuto lets the API resolve the zone from the coordinates
	TimezoneAuto = "auto"
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewForecastClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = BaseForecastURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-forecast-client"),
	}
}

// GetForecast fetches hourly and daily forecast arrays for the coordinates,
// with timestamps in the given IANA timezone (or TimezoneAuto).
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	hourlyVars := []string{
		"temperature_2m",
		"wind_speed_10m",
		"weather_code",
	}

	dailyVars := []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"weather_code",
	}

	if timezone == "" {
		timezone = TimezoneAuto
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", timezone)
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	q.Set("timeformat", "iso8601")
	q.Set("temperature_unit", "celsius")
	q.Set("wind_speed_unit", "ms")
	q.Set("precipitation_unit", "mm")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast", "latitude", latitude, "longitude", longitude, "timezone", timezone, "days", forecastDays)

	var apiResp ForecastAPIResponse
	if err := getJSON(ctx, c.httpClient, u.String(), &apiResp); err != nil {
		return nil, err
	}
	return &apiResp, nil
}

// getJSON performs a GET and decodes a 200 response body into out
func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
