package dashboard

import (
	"context"
	"fmt"

	"weather-dashboard/internal/store"
	"weather-dashboard/internal/types"
)

// Theme returns the stored theme. When none is stored the client's color
// scheme preference decides, and the choice is persisted.
func (s *Service) Theme(ctx context.Context, prefersDark bool) types.Theme {
	if theme, err := types.ParseTheme(store.GetOr(ctx, s.store, store.KeyTheme, "")); err == nil {
		return theme
	}

	theme := types.ThemeLight
	if prefersDark {
		theme = types.ThemeDark
	}
	if err := s.store.Set(ctx, store.KeyTheme, string(theme)); err != nil {
		s.logger.Warn("failed to persist theme", "theme", theme, "error", err)
	}
	return theme
}

func (s *Service) SetTheme(ctx context.Context, theme types.Theme) error {
	if _, err := types.ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, store.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	return nil
}

// ToggleTheme flips the current theme and persists it
func (s *Service) ToggleTheme(ctx context.Context, prefersDark bool) (types.Theme, error) {
	next := s.Theme(ctx, prefersDark).Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
