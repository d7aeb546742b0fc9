package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"weather-dashboard/internal/chart"
	"weather-dashboard/internal/clock"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/metrics"
	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/providers/openstreetmap"
	"weather-dashboard/internal/sequencer"
	"weather-dashboard/internal/store"
	"weather-dashboard/internal/timezone"
	"weather-dashboard/internal/view"
	"weather-dashboard/internal/weather"

	"github.com/gin-gonic/gin"

	_ "weather-dashboard/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	dashboard *dashboard.Service
	metrics   *metrics.Metrics
	store     store.Store
	cfg       *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	m := metrics.New()

	kv, err := store.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	finder, err := timezone.NewFinder()
	if err != nil {
		// forecasts still work with timezone=auto
		logger.Warn("timezone finder unavailable, falling back to provider lookup", "error", err)
		finder = nil
	}

	base := &http.Client{Timeout: cfg.Providers.Timeout}
	forecastClient := openmeteo.NewForecastClient(cfg.Providers.ForecastURL, m.HTTPClient("openmeteo-forecast", base), logger)
	geocodingClient := openmeteo.NewGeocodingClient(cfg.Providers.GeocodingURL, m.HTTPClient("openmeteo-geocoding", base), logger)
	reverseClient := openstreetmap.NewClient(
		cfg.Providers.ReverseURL,
		cfg.Providers.UserAgent,
		cfg.Providers.ReverseRatePerSecond,
		m.HTTPClient("nominatim", base),
		logger,
	)

	clk := clock.System()
	svc := dashboard.New(cfg, dashboard.Deps{
		Locations: location.NewService(geocodingClient, reverseClient, logger),
		Weather:   weather.NewService(forecastClient, finder, logger),
		Store:     kv,
		Sequencer: sequencer.New(logger, m),
		View:      view.New(clk, cfg.App.NotificationTTL),
		Renderer:  chart.NewRenderer(logger),
		Clock:     clk,
		Charts:    m,
	}, logger)

	app, err := newApp(cfg, logger, svc, m)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	app.store = kv

	logger.Info("application initialized", "store", cfg.Store.Driver)
	return app, nil
}

// newApp builds the router around an already wired dashboard service
func newApp(cfg *config.Config, logger *slog.Logger, svc *dashboard.Service, m *metrics.Metrics) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery(), m.Middleware())

	tmpl, err := view.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	app := &App{
		router:    router,
		logger:    logger,
		dashboard: svc,
		metrics:   m,
		cfg:       cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run replays the last stored location in the background and starts the
// HTTP server
func (app *App) Run(addr string) error {
	if app.cfg.App.RestoreOnStartup {
		go func() {
			if app.dashboard.Restore(context.Background()) {
				app.logger.Info("startup restore finished")
			}
		}()
	}
	return app.router.Run(addr)
}

func (app *App) Close() {
	if app.store == nil {
		return
	}
	if err := app.store.Close(); err != nil {
		app.logger.Warn("failed to close store", "error", err)
	}
}
