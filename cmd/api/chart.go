package main

import (
	"errors"
	"net/http"

	"weather-dashboard/internal/chart"
	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/view"

	"github.com/gin-gonic/gin"
)

const noLocationMessage = "Location not available."

// ChartImageInput defines the query parameters for the chart image endpoint
type ChartImageInput struct {
	chart.HandoffParams
	dashboard.ChartSize
}

// handleChartPage godoc
// @Summary Chart page
// @Description Hourly temperature chart for today. Present parameters are stored; absent ones come from the store.
// @Tags pages
// @Produce html
// @Param theme query string false "light or dark"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param city query string false "City label"
// @Success 200 {string} string "HTML page"
// @Router /chart [get]
func (app *App) handleChartPage(c *gin.Context) {
	var params chart.HandoffParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h, err := app.dashboard.ChartHandoff(c.Request.Context(), params, prefersDark(c))
	page := view.ChartPage{City: h.City, Theme: h.Theme}
	if err != nil {
		page.Error = noLocationMessage
	} else {
		page.ImageURL = "/chart.png?" + h.Params().Query()
	}
	c.HTML(http.StatusOK, view.ChartTemplate, page)
}

// handleChartImage godoc
// @Summary Chart image
// @Description PNG of today's hourly temperatures with a zero baseline, sized in logical pixels times the pixel ratio
// @Tags pages
// @Produce png
// @Param theme query string false "light or dark"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Param city query string false "City label"
// @Param width query int false "Logical width" example(900)
// @Param height query int false "Logical height" example(420)
// @Param ratio query number false "Device pixel ratio" example(2)
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /chart.png [get]
func (app *App) handleChartImage(c *gin.Context) {
	var input ChartImageInput
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	h, err := app.dashboard.ChartHandoff(ctx, input.HandoffParams, prefersDark(c))
	if errors.Is(err, chart.ErrNoLocation) {
		c.JSON(http.StatusNotFound, gin.H{"error": noLocationMessage})
		return
	}

	canvas, _, err := app.dashboard.RenderChart(ctx, h, input.ChartSize)
	if err != nil {
		app.logger.Error("failed to render chart",
			"latitude", h.Coords.Latitude,
			"longitude", h.Coords.Longitude,
			"error", err,
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": view.FailedMessage})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := canvas.EncodePNG(c.Writer); err != nil {
		app.logger.Error("failed to encode chart", "error", err)
	}
}
