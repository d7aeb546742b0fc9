package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

// @title Weather Dashboard API
// @version 1.0
// @description Server-rendered weather dashboard: current conditions, multi-day forecast, intra-day timeline and temperature chart.
// @host localhost:8080
// @BasePath /

import (
	"log"
	"log/slog"

	_ "time/tzdata" // forecast zones must load on hosts without a zoneinfo database

	"weather-dashboard/internal/config"

	_ "weather-dashboard/docs" // Import generated docs
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}
	defer app.Close()

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
