package dashboard

import (
	"context"
	"fmt"
	"math"

	"weather-dashboard/internal/chart"
	"weather-dashboard/internal/forecast"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/types"
)

const (
	chartForecastDays = 1
	maxChartDimension = 4096
	minChartDimension = 200

	defaultMaxChartPixels = maxChartDimension * maxChartDimension
)

// ChartSize is the requested surface in logical pixels; zero fields take the
// configured defaults
type ChartSize struct {
	Width  int     `form:"width"`
	Height int     `form:"height"`
	Ratio  float64 `form:"ratio"`
}

// ChartHandoff resolves the chart page's location and theme
func (s *Service) ChartHandoff(ctx context.Context, params chart.HandoffParams, prefersDark bool) (chart.Handoff, error) {
	return chart.ResolveHandoff(ctx, s.store, params, s.Theme(ctx, prefersDark), s.logger)
}

// RenderChart draws today's hourly temperatures for h onto a new canvas
func (s *Service) RenderChart(ctx context.Context, h chart.Handoff, size ChartSize) (*chart.Canvas, []chart.DisplayPoint, error) {
	payload, err := s.weather.GetForecast(ctx, h.Coords, chartForecastDays)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get chart forecast: %w", err)
	}

	hours := forecast.Hourly(payload, s.clock.Now())
	series := chart.Series{
		Labels: make([]string, len(hours)),
		Values: make([]float64, len(hours)),
		Codes:  make([]types.WeatherCode, len(hours)),
	}
	for i, hr := range hours {
		series.Labels[i] = fmt.Sprintf("%02d:00", hr.Time.Hour())
		series.Values[i] = hr.Value
		series.Codes[i] = hr.Code
	}

	canvas := chart.NewCanvas(s.clampSize(size))
	points := s.renderer.Render(canvas, series, h.Theme)
	s.charts.RecordChartRender()

	s.logger.Debug("chart rendered",
		"latitude", h.Coords.Latitude,
		"longitude", h.Coords.Longitude,
		"points", len(points),
		"theme", h.Theme,
	)
	return canvas, points, nil
}

func (s *Service) clampSize(size ChartSize) (int, int, float64) {
	w, h, r := size.Width, size.Height, size.Ratio
	if w <= 0 {
		w = s.chartCfg.Width
	}
	if h <= 0 {
		h = s.chartCfg.Height
	}
	if !(r > 0) || math.IsInf(r, 0) {
		r = s.chartCfg.PixelRatio
	}
	if !(r > 0) || math.IsInf(r, 0) {
		r = 1
	}
	w = min(max(w, minChartDimension), maxChartDimension)
	h = min(max(h, minChartDimension), maxChartDimension)
	if s.chartCfg.MaxPixelRatio > 0 {
		r = min(r, s.chartCfg.MaxPixelRatio)
	}

	budget := s.chartCfg.MaxPixels
	if budget <= 0 {
		budget = defaultMaxChartPixels
	}
	area := float64(w) * float64(h)
	if area*r*r > float64(budget) {
		r = math.Sqrt(float64(budget) / area)
	}
	return w, h, r
}

// ChartParams returns the stored handoff values the dashboard links the
// chart page with
func (s *Service) ChartParams(ctx context.Context, theme types.Theme) chart.HandoffParams {
	return chart.HandoffParams{
		Theme: string(theme),
		Lat:   store.GetOr(ctx, s.store, store.KeyLastLat, ""),
		Lon:   store.GetOr(ctx, s.store, store.KeyLastLon, ""),
		City:  store.GetOr(ctx, s.store, store.KeyCity, ""),
	}
}
