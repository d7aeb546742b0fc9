package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	Store     StoreConfig
	Providers ProvidersConfig
	Chart     ChartConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds dashboard behavior settings
type AppConfig struct {
	ForecastDays     int           // Days requested for the dashboard forecast, today included
	NotificationTTL  time.Duration // How long a transient notification stays visible
	SuggestionCount  int           // Maximum city suggestions returned
	RestoreOnStartup bool          // Replay the last stored location at boot
}

// StoreConfig selects the persisted key-value backend
type StoreConfig struct {
	Driver    string // memory, sqlite, redis
	Path      string // sqlite database file
	RedisAddr string
	RedisDB   int
	KeyPrefix string // redis key namespace
}

// ProvidersConfig holds upstream API settings
type ProvidersConfig struct {
	ForecastURL          string
	GeocodingURL         string
	ReverseURL           string
	UserAgent            string
	Timeout              time.Duration
	ReverseRatePerSecond float64
}

// ChartConfig holds the default chart surface size in logical pixels
type ChartConfig struct {
	Width         int
	Height        int
	PixelRatio    float64
	MaxPixelRatio float64
	MaxPixels     int // cap on device pixels (width*height*ratio²) per render
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-dashboard")

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("WEATHER_DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshal(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.forecastDays", 8)
	v.SetDefault("app.notificationTTL", 5*time.Second)
	v.SetDefault("app.suggestionCount", 5)
	v.SetDefault("app.restoreOnStartup", true)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "weather-dashboard.db")
	v.SetDefault("store.redisAddr", "localhost:6379")
	v.SetDefault("store.redisDB", 0)
	v.SetDefault("store.keyPrefix", "weather-dashboard:")
	v.SetDefault("providers.forecastURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("providers.geocodingURL", "https://geocoding-api.open-meteo.com/v1/search")
	v.SetDefault("providers.reverseURL", "https://nominatim.openstreetmap.org/reverse")
	v.SetDefault("providers.userAgent", "weather-dashboard/1.0")
	v.SetDefault("providers.timeout", 10*time.Second)
	v.SetDefault("providers.reverseRatePerSecond", 1.0)
	v.SetDefault("chart.width", 900)
	v.SetDefault("chart.height", 420)
	v.SetDefault("chart.pixelRatio", 2.0)
	v.SetDefault("chart.maxPixelRatio", 4.0)
	v.SetDefault("chart.maxPixels", 4096*4096)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.App.ForecastDays < 2 {
		return nil, fmt.Errorf("app.forecastDays must be at least 2, got %d", cfg.App.ForecastDays)
	}
	if cfg.Chart.PixelRatio <= 0 {
		return nil, fmt.Errorf("chart.pixelRatio must be positive, got %v", cfg.Chart.PixelRatio)
	}
	if cfg.Chart.MaxPixels <= 0 {
		return nil, fmt.Errorf("chart.maxPixels must be positive, got %d", cfg.Chart.MaxPixels)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
