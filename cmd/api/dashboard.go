package main

import (
	"errors"
	"net/http"

	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/location"
	"weather-dashboard/internal/types"
	"weather-dashboard/internal/view"

	"github.com/gin-gonic/gin"
)

// GeolocationInput is the position reported by the browser
type GeolocationInput struct {
	Latitude  *float64 `json:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `json:"longitude" binding:"required"` // Longitude in decimal degrees
}

// GeolocationErrorInput describes why the browser could not report a position
type GeolocationErrorInput struct {
	Reason string `json:"reason" example:"denied"` // "denied" or "unsupported"
}

// SearchInput is a submitted city search
type SearchInput struct {
	City string `json:"city" example:"Berlin"`
}

// SearchResponse tells the client to geolocate instead
type SearchResponse struct {
	Geolocate bool `json:"geolocate" example:"true"`
}

// Suggestion is one autocomplete candidate
type Suggestion struct {
	Name      string  `json:"name" example:"Berlin"`
	Country   string  `json:"country,omitempty" example:"Germany"`
	Label     string  `json:"label" example:"Berlin, Germany"`
	Latitude  float64 `json:"latitude" example:"52.52437"`
	Longitude float64 `json:"longitude" example:"13.41053"`
}

// handleDashboardPage godoc
// @Summary Dashboard page
// @Description Render the dashboard from the current view state
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (app *App) handleDashboardPage(c *gin.Context) {
	ctx := c.Request.Context()
	theme := app.dashboard.Theme(ctx, prefersDark(c))
	c.HTML(http.StatusOK, view.DashboardTemplate, view.DashboardPage{
		Snapshot: app.dashboard.Snapshot(),
		Theme:    theme,
		ChartURL: "/chart?" + app.dashboard.ChartParams(ctx, theme).Query(),
	})
}

// handleGetDashboard godoc
// @Summary Dashboard state
// @Description Current conditions, forecast list, timeline and active notifications
// @Tags dashboard
// @Produce json
// @Success 200 {object} view.Snapshot
// @Router /api/dashboard [get]
func (app *App) handleGetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, app.dashboard.Snapshot())
}

// handleGeolocation godoc
// @Summary Geolocation lookup
// @Description Load weather for the browser's position. A search started meanwhile wins.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param input body GeolocationInput true "Browser position"
// @Success 200 {object} view.Snapshot
// @Failure 400 {object} map[string]string
// @Router /api/geolocation [post]
func (app *App) handleGeolocation(c *gin.Context) {
	var input GeolocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := app.dashboard.LocateByCoordinates(c.Request.Context(), types.NewCoords(*input.Latitude, *input.Longitude))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// handleGeolocationError godoc
// @Summary Report geolocation failure
// @Description Post the notification for a denied or unsupported geolocation request
// @Tags dashboard
// @Accept json
// @Produce json
// @Param input body GeolocationErrorInput true "Failure reason"
// @Success 200 {object} view.Notification
// @Router /api/geolocation/error [post]
func (app *App) handleGeolocationError(c *gin.Context) {
	var input GeolocationErrorInput
	// an empty or malformed body still counts as a failure
	_ = c.ShouldBindJSON(&input)
	c.JSON(http.StatusOK, app.dashboard.ReportGeolocationError(input.Reason))
}

// handleSearch godoc
// @Summary City search
// @Description Resolve a city and load its weather. An empty city asks the client to geolocate.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param input body SearchInput true "City name"
// @Success 200 {object} view.Snapshot "Rendered lookup, or SearchResponse for an empty city"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/search [post]
func (app *App) handleSearch(c *gin.Context) {
	var input SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := app.dashboard.Search(c.Request.Context(), input.City)
	switch {
	case errors.Is(err, dashboard.ErrEmptyQuery):
		c.JSON(http.StatusOK, SearchResponse{Geolocate: true})
	case errors.Is(err, location.ErrNoMatch):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		app.logger.Error("search failed", "city", input.City, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
	default:
		c.JSON(http.StatusOK, snap)
	}
}

// handleSuggestions godoc
// @Summary City suggestions
// @Description Up to five candidates for a partial city name; fewer than two characters returns none
// @Tags dashboard
// @Produce json
// @Param q query string false "Partial city name" example(Ber)
// @Success 200 {array} Suggestion
// @Router /api/suggestions [get]
func (app *App) handleSuggestions(c *gin.Context) {
	query := c.Query("q")
	places, err := app.dashboard.Suggest(c.Request.Context(), query)
	if err != nil {
		// suggestions are best effort
		app.logger.Warn("failed to get suggestions", "query", query, "error", err)
		places = nil
	}

	out := make([]Suggestion, 0, len(places))
	for _, p := range places {
		out = append(out, Suggestion{
			Name:      p.Name,
			Country:   p.Country,
			Label:     p.Label(),
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}
	c.JSON(http.StatusOK, out)
}
