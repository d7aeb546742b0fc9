package location

import (
	"context"

	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/providers/openstreetmap"
)

// GeocodeProvider searches places by free-text name
type GeocodeProvider interface {
	Search(ctx context.Context, name string, count int) ([]openmeteo.GeocodingResult, error)
}

// ReverseGeocodeProvider names the place at a coordinate
type ReverseGeocodeProvider interface {
	Reverse(ctx context.Context, latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error)
}
