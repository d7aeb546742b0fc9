package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weather-dashboard/internal/forecast"
	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/types"
)

const (
	hourlyTimeLayout = "2006-01-02T15:04"
	dailyDateLayout  = "2006-01-02"
)

type ForecastProvider interface {
	// GetForecast fetches hourly and daily arrays for the coordinates in the given timezone
	GetForecast(ctx context.Context, latitude, longitude float64, forecastDays int, timezone string) (*openmeteo.ForecastAPIResponse, error)
}

type Service struct {
	forecastProvider ForecastProvider
	timezoneFinder   timezone.Finder
	logger           *slog.Logger
}

// NewService wires a forecast provider. finder may be nil, in which case the
// provider resolves the timezone itself.
func NewService(forecastProvider ForecastProvider, finder timezone.Finder, logger *slog.Logger) *Service {
	return &Service{
		forecastProvider: forecastProvider,
		timezoneFinder:   finder,
		logger:           logger.With("component", "weather-service"),
	}
}

// GetForecast fetches a forecastDays-long payload for coords with all
// timestamps in the location's local zone.
func (s *Service) GetForecast(ctx context.Context, coords types.Coords, forecastDays int) (*forecast.Payload, error) {
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("invalid coordinates: %w", err)
	}

	tz := timezone.ForCoordinates(s.timezoneFinder, coords.Latitude, coords.Longitude)
	s.logger.Debug("determined timezone for location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"timezone", tz,
	)

	apiResponse, err := s.forecastProvider.GetForecast(ctx, coords.Latitude, coords.Longitude, forecastDays, tz)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	return mapForecastAPIResponseToPayload(apiResponse)
}

func mapForecastAPIResponseToPayload(resp *openmeteo.ForecastAPIResponse) (*forecast.Payload, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: forecast response is nil", forecast.ErrInvalidPayload)
	}

	loc := responseLocation(resp)

	hourlyTimes, err := parseAll(resp.Hourly.Time, hourlyTimeLayout, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: hourly %v", forecast.ErrInvalidPayload, err)
	}
	dailyDates, err := parseAll(resp.Daily.Time, dailyDateLayout, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: daily %v", forecast.ErrInvalidPayload, err)
	}

	payload := &forecast.Payload{
		Location: loc,
		Hourly: forecast.HourlySeries{
			Times:        hourlyTimes,
			Temperatures: resp.Hourly.Temperature2M,
			WindSpeeds:   resp.Hourly.WindSpeed10M,
			WeatherCodes: toWeatherCodes(resp.Hourly.WeatherCode),
		},
		Daily: forecast.DailySeries{
			Dates:         dailyDates,
			TempMax:       resp.Daily.Temperature2MMax,
			TempMin:       resp.Daily.Temperature2MMin,
			Precipitation: resp.Daily.PrecipitationSum,
			WeatherCodes:  toWeatherCodes(resp.Daily.WeatherCode),
		},
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return payload, nil
}

// responseLocation prefers the IANA zone the provider reports and falls back
// to a fixed zone built from its UTC offset.
func responseLocation(resp *openmeteo.ForecastAPIResponse) *time.Location {
	if resp.Timezone != "" {
		if loc, err := time.LoadLocation(resp.Timezone); err == nil {
			return loc
		}
	}
	name := resp.TimezoneAbbreviation
	if name == "" {
		name = "UTC"
	}
	return time.FixedZone(name, resp.UtcOffsetSeconds)
}

func parseAll(values []string, layout string, loc *time.Location) ([]time.Time, error) {
	out := make([]time.Time, len(values))
	for i, v := range values {
		t, err := time.ParseInLocation(layout, v, loc)
		if err != nil {
			return nil, fmt.Errorf("unparseable timestamp %q at index %d", v, i)
		}
		out[i] = t
	}
	return out, nil
}

func toWeatherCodes(codes []int) []types.WeatherCode {
	out := make([]types.WeatherCode, len(codes))
	for i, c := range codes {
		out[i] = types.WeatherCode(c)
	}
	return out
}
