// Package dashboard runs the lookup pipeline: a location enters through
// geolocation, search or restore, the forecast is fetched and formatted, and
// the result is applied to the view only if its lookup is still current.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"weather-dashboard/internal/chart"
	"weather-dashboard/internal/clock"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/forecast"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/sequencer"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/view"
)

const (
	MessageGeolocationDenied      = "Unable to access location."
	MessageGeolocationUnsupported = "Geolocation not supported by your browser."

	// GeolocationUnsupported is the reason a browser without the API reports
	GeolocationUnsupported = "unsupported"
)

var ErrEmptyQuery = errors.New("empty search query")

// LocationService resolves names and coordinates
type LocationService interface {
	Suggest(ctx context.Context, query string, count int) ([]types.Place, error)
	Resolve(ctx context.Context, city string) (types.Location, error)
	Name(ctx context.Context, coords types.Coords) string
}

// WeatherService fetches forecast payloads in local time
type WeatherService interface {
	GetForecast(ctx context.Context, coords types.Coords, forecastDays int) (*forecast.Payload, error)
}

// ChartRecorder counts rendered charts
type ChartRecorder interface {
	RecordChartRender()
}

type nopChartRecorder struct{}

func (nopChartRecorder) RecordChartRender() {}

// Deps are the collaborators of a Service
type Deps struct {
	Locations LocationService
	Weather   WeatherService
	Store     store.Store
	Sequencer *sequencer.Sequencer
	View      *view.View
	Renderer  *chart.Renderer
	Clock     clock.Clock
	Charts    ChartRecorder
}

type Service struct {
	app       config.AppConfig
	chartCfg  config.ChartConfig
	locations LocationService
	weather   WeatherService
	store     store.Store
	seq       *sequencer.Sequencer
	view      *view.View
	renderer  *chart.Renderer
	clock     clock.Clock
	charts    ChartRecorder
	logger    *slog.Logger
}

func New(cfg *config.Config, deps Deps, logger *slog.Logger) *Service {
	if deps.Clock == nil {
		deps.Clock = clock.System()
	}
	if deps.Charts == nil {
		deps.Charts = nopChartRecorder{}
	}
	if deps.Store == nil {
		deps.Store = store.NewMemory()
	}
	if deps.Sequencer == nil {
		deps.Sequencer = sequencer.New(logger, nil)
	}
	if deps.View == nil {
		deps.View = view.New(deps.Clock, cfg.App.NotificationTTL)
	}
	if deps.Renderer == nil {
		deps.Renderer = chart.NewRenderer(logger)
	}
	return &Service{
		app:       cfg.App,
		chartCfg:  cfg.Chart,
		locations: deps.Locations,
		weather:   deps.Weather,
		store:     deps.Store,
		seq:       deps.Sequencer,
		view:      deps.View,
		renderer:  deps.Renderer,
		clock:     deps.Clock,
		charts:    deps.Charts,
		logger:    logger.With("component", "dashboard"),
	}
}

// Snapshot returns what is currently on screen
func (s *Service) Snapshot() view.Snapshot {
	return s.view.Snapshot()
}

// LocateByCoordinates runs a geolocation-origin lookup. The place name is
// resolved first; a search started meanwhile suppresses the result.
func (s *Service) LocateByCoordinates(ctx context.Context, coords types.Coords) (view.Snapshot, error) {
	if err := coords.Validate(); err != nil {
		return view.Snapshot{}, fmt.Errorf("invalid coordinates: %w", err)
	}

	t := s.seq.Begin(sequencer.OriginGeolocation)
	name := s.locations.Name(ctx, coords)
	if !s.seq.Current(t) {
		s.logger.Debug("geolocation lookup canceled before fetch", "ticket", t.ID)
		return s.view.Snapshot(), nil
	}

	s.load(ctx, t, types.NewLocation(coords.Latitude, coords.Longitude, name))
	return s.view.Snapshot(), nil
}

// Search runs a search-origin lookup for a submitted city name. An empty
// query starts nothing and returns ErrEmptyQuery so the caller can geolocate
// again. A city that cannot be resolved posts a notification, unless a newer
// lookup has started meanwhile, and returns location.ErrNoMatch.
func (s *Service) Search(ctx context.Context, city string) (view.Snapshot, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return s.view.Snapshot(), ErrEmptyQuery
	}

	t := s.seq.Begin(sequencer.OriginSearch)
	loc, err := s.locations.Resolve(ctx, city)
	if err != nil {
		if !errors.Is(err, location.ErrNoMatch) {
			s.logger.Warn("city resolution failed", "city", city, "error", err)
			err = fmt.Errorf("%w: %v", location.ErrNoMatch, err)
		}
		_ = s.seq.Abandon(t, func() {
			s.view.CancelLoading()
			s.view.Notify(fmt.Sprintf("City %q not found. Please try again.", city))
		})
		return s.view.Snapshot(), err
	}

	s.load(ctx, t, loc)
	return s.view.Snapshot(), nil
}

// Suggest lists candidate cities for a partial name. Typing counts as a
// search intent, so pending geolocation lookups are canceled.
func (s *Service) Suggest(ctx context.Context, query string) ([]types.Place, error) {
	s.seq.CancelGeolocation()
	return s.locations.Suggest(ctx, query, s.app.SuggestionCount)
}

// ReportGeolocationError posts the notification for a failed or unsupported
// browser geolocation request
func (s *Service) ReportGeolocationError(reason string) view.Notification {
	if reason == GeolocationUnsupported {
		return s.view.Notify(MessageGeolocationUnsupported)
	}
	return s.view.Notify(MessageGeolocationDenied)
}

// Restore replays the last stored location. It reports false when nothing
// usable is stored.
func (s *Service) Restore(ctx context.Context) bool {
	lat, latErr := strconv.ParseFloat(store.GetOr(ctx, s.store, store.KeyLastLat, ""), 64)
	lon, lonErr := strconv.ParseFloat(store.GetOr(ctx, s.store, store.KeyLastLon, ""), 64)
	if latErr != nil || lonErr != nil {
		return false
	}
	coords := types.NewCoords(lat, lon)
	if coords.Validate() != nil {
		return false
	}

	t := s.seq.Begin(sequencer.OriginRestore)
	name := store.GetOr(ctx, s.store, store.KeyCity, "")
	if name == "" {
		name = s.locations.Name(ctx, coords)
	}

	s.logger.Info("restoring last location", "latitude", lat, "longitude", lon, "city", name)
	s.load(ctx, t, types.NewLocation(lat, lon, name))
	return true
}

// load fetches and renders the forecast for loc under ticket t. Failures end
// up in the view; nothing propagates past this point.
func (s *Service) load(ctx context.Context, t sequencer.Ticket, loc types.Location) {
	if err := s.seq.Apply(t, s.view.ShowLoading); err != nil {
		return
	}

	payload, err := s.weather.GetForecast(ctx, loc.Coordinates, s.app.ForecastDays)
	if err != nil {
		s.fail(t, loc, err)
		return
	}

	now := s.clock.Now()
	current, err := forecast.SelectCurrent(payload, now)
	if err != nil {
		s.fail(t, loc, err)
		return
	}
	days := forecast.Daily(payload, now)
	hours := forecast.Hourly(payload, now)

	err = s.seq.Resolve(t, func() {
		s.view.ShowWeather(loc, current, days, hours)
		s.persist(ctx, loc)
	})
	if err == nil {
		s.logger.Debug("lookup rendered", "ticket", t.ID, "origin", t.Origin, "city", loc.DisplayName)
	}
}

func (s *Service) fail(t sequencer.Ticket, loc types.Location, cause error) {
	err := s.seq.Fail(t, s.view.ShowError)
	if err != nil {
		return
	}
	s.logger.Error("failed to load weather",
		"ticket", t.ID,
		"origin", t.Origin,
		"latitude", loc.Coordinates.Latitude,
		"longitude", loc.Coordinates.Longitude,
		"error", cause,
	)
}

func (s *Service) persist(ctx context.Context, loc types.Location) {
	values := map[string]string{
		store.KeyCity:    loc.DisplayName,
		store.KeyLastLat: strconv.FormatFloat(loc.Coordinates.Latitude, 'f', -1, 64),
		store.KeyLastLon: strconv.FormatFloat(loc.Coordinates.Longitude, 'f', -1, 64),
	}
	for k, v := range values {
		if err := s.store.Set(ctx, k, v); err != nil {
			s.logger.Warn("failed to persist setting", "key", k, "error", err)
		}
	}
}
