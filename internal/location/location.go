package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/providers/openstreetmap"
	"weather-dashboard/internal/types"
)

// MinSuggestionQueryLength is the shortest query that reaches the geocoder
const MinSuggestionQueryLength = 2

var ErrNoMatch = errors.New("no matching place")

type Service struct {
	geocoder GeocodeProvider
	reverse  ReverseGeocodeProvider
	logger   *slog.Logger
}

func NewService(geocoder GeocodeProvider, reverse ReverseGeocodeProvider, logger *slog.Logger) *Service {
	return &Service{
		geocoder: geocoder,
		reverse:  reverse,
		logger:   logger.With("component", "location-service"),
	}
}

// Suggest returns up to count ranked candidates for a partial city name.
// Queries shorter than MinSuggestionQueryLength return an empty list without
// calling the provider.
func (s *Service) Suggest(ctx context.Context, query string, count int) ([]types.Place, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSuggestionQueryLength {
		return []types.Place{}, nil
	}

	results, err := s.geocoder.Search(ctx, query, count)
	if err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	places := make([]types.Place, 0, len(results))
	for _, r := range results {
		places = append(places, translatePlace(r))
	}
	return places, nil
}

// Resolve geocodes a submitted city name to its best match
func (s *Service) Resolve(ctx context.Context, city string) (types.Location, error) {
	results, err := s.geocoder.Search(ctx, city, 1)
	if err != nil {
		return types.Location{}, fmt.Errorf("failed to resolve city: %w", err)
	}
	if len(results) == 0 {
		return types.Location{}, fmt.Errorf("%w: %q", ErrNoMatch, city)
	}
	return translatePlace(results[0]).Location(), nil
}

// Name returns a best-effort place name for the coordinates. Provider
// failures degrade to types.UnknownLocationName.
func (s *Service) Name(ctx context.Context, coords types.Coords) string {
	resp, err := s.reverse.Reverse(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("reverse geocoding failed, using fallback name",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return types.UnknownLocationName
	}
	return translateName(resp)
}

func translatePlace(r openmeteo.GeocodingResult) types.Place {
	return types.Place{
		Name:      r.Name,
		Country:   r.Country,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// translateName prefers the city, then the town, then the full display name
func translateName(resp *openstreetmap.ReverseAPIResponse) string {
	if resp == nil {
		return types.UnknownLocationName
	}
	switch {
	case resp.Address.City != "":
		return resp.Address.City
	case resp.Address.Town != "":
		return resp.Address.Town
	case resp.DisplayName != "":
		return resp.DisplayName
	default:
		return types.UnknownLocationName
	}
}
