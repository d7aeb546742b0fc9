// Package store persists the dashboard's small string settings: last
// location, last coordinates and theme. Values never expire.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"weather-dashboard/internal/config"
)

// ErrNotFound is returned by Get for a missing key
var ErrNotFound = errors.New("key not found")

// Keys written by the dashboard
const (
	KeyCity    = "city"
	KeyLastLat = "lastLat"
	KeyLastLon = "lastLon"
	KeyTheme   = "theme"
)

// Store is a string-keyed, string-valued persistent map
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open builds the backend named by cfg.Driver
func Open(cfg config.StoreConfig) (Store, error) {
	switch strings.ToLower(cfg.Driver) {
	case "memory", "":
		return NewMemory(), nil
	case "sqlite":
		s, err := NewSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "redis":
		r, err := NewRedis(cfg.RedisAddr, cfg.RedisDB, cfg.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// GetOr returns the stored value, or fallback when the key is missing or the
// read fails.
func GetOr(ctx context.Context, s Store, key, fallback string) string {
	v, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	return v
}
