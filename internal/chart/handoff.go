package chart

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/url"
	"strconv"

	"weather-dashboard/internal/store"
	"weather-dashboard/internal/types"
)

// ErrNoLocation is returned when neither the request nor the store carries
// usable coordinates
var ErrNoLocation = errors.New("location not available")

// HandoffParams are the raw query parameters passed from the dashboard to
// the chart page. Empty fields are absent.
type HandoffParams struct {
	Theme string `form:"theme"`
	Lat   string `form:"lat"`
	Lon   string `form:"lon"`
	City  string `form:"city"`
}

// Handoff is the resolved location and theme for one chart render
type Handoff struct {
	Coords types.Coords
	City   string
	Theme  types.Theme
}

// ResolveHandoff writes every usable parameter back to the store and fills
// the absent ones from it. Coordinates are written only when the resulting
// pair is valid. Theme falls back to fallbackTheme.
func ResolveHandoff(ctx context.Context, s store.Store, p HandoffParams, fallbackTheme types.Theme, logger *slog.Logger) (Handoff, error) {
	set := func(key, value string) {
		if err := s.Set(ctx, key, value); err != nil {
			logger.Warn("failed to persist chart parameter", "key", key, "error", err)
		}
	}

	lat := store.GetOr(ctx, s, store.KeyLastLat, "")
	lon := store.GetOr(ctx, s, store.KeyLastLon, "")
	latParam, lonParam := usableCoord(p.Lat), usableCoord(p.Lon)
	if latParam || lonParam {
		candLat, candLon := lat, lon
		if latParam {
			candLat = p.Lat
		}
		if lonParam {
			candLon = p.Lon
		}
		if _, err := parseCoords(candLat, candLon); err == nil {
			lat, lon = candLat, candLon
			if latParam {
				set(store.KeyLastLat, lat)
			}
			if lonParam {
				set(store.KeyLastLon, lon)
			}
		} else {
			logger.Debug("ignoring chart coordinates", "lat", p.Lat, "lon", p.Lon, "error", err)
		}
	}
	if p.City != "" {
		set(store.KeyCity, p.City)
	}
	if _, err := types.ParseTheme(p.Theme); err == nil {
		set(store.KeyTheme, p.Theme)
	}

	h := Handoff{
		City:  store.GetOr(ctx, s, store.KeyCity, ""),
		Theme: fallbackTheme,
	}
	if theme, err := types.ParseTheme(store.GetOr(ctx, s, store.KeyTheme, "")); err == nil {
		h.Theme = theme
	}

	coords, err := parseCoords(lat, lon)
	if err != nil {
		return h, ErrNoLocation
	}
	h.Coords = coords
	return h, nil
}

// usableCoord reports whether v parses as a single finite coordinate
func usableCoord(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseCoords(lat, lon string) (types.Coords, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return types.Coords{}, err
	}
	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return types.Coords{}, err
	}
	c := types.NewCoords(la, lo)
	return c, c.Validate()
}

// Query encodes the non-empty parameters as a URL query string
func (p HandoffParams) Query() string {
	q := url.Values{}
	for k, v := range map[string]string{"theme": p.Theme, "lat": p.Lat, "lon": p.Lon, "city": p.City} {
		if v != "" {
			q.Set(k, v)
		}
	}
	return q.Encode()
}

// Params converts a resolved handoff back into query parameters
func (h Handoff) Params() HandoffParams {
	return HandoffParams{
		Theme: string(h.Theme),
		Lat:   strconv.FormatFloat(h.Coords.Latitude, 'f', -1, 64),
		Lon:   strconv.FormatFloat(h.Coords.Longitude, 'f', -1, 64),
		City:  h.City,
	}
}
