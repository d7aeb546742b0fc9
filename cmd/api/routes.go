package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Pages
	app.router.GET("/", app.handleDashboardPage)
	app.router.GET("/chart", app.handleChartPage)
	app.router.GET("/chart.png", app.handleChartImage)

	// Dashboard API
	api := app.router.Group("/api")
	api.GET("/dashboard", app.handleGetDashboard)
	api.POST("/geolocation", app.handleGeolocation)
	api.POST("/geolocation/error", app.handleGeolocationError)
	api.POST("/search", app.handleSearch)
	api.GET("/suggestions", app.handleSuggestions)
	api.GET("/theme", app.handleGetTheme)
	api.PUT("/theme", app.handleSetTheme)
	api.POST("/theme/toggle", app.handleToggleTheme)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(app.metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
