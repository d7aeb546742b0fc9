package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Auto asks the forecast provider to resolve the zone itself
const Auto = "auto"

var ErrUnknownTimezone = errors.New("could not determine timezone")

// Finder maps coordinates to IANA zone names
type Finder interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type tzfFinder struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *tzfFinder
	initErr  error
	once     sync.Once
)

// NewFinder returns the process-wide tzf finder. The polygon data is large,
// so it is loaded once and shared.
func NewFinder() (Finder, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &tzfFinder{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "Europe/Berlin" or "America/Denver"
func (f *tzfFinder) GetTimezone(latitude, longitude float64) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	name := f.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("%w for coordinates lat=%f, lon=%f", ErrUnknownTimezone, latitude, longitude)
	}
	return name, nil
}

// ForCoordinates resolves a zone name for the forecast request, falling back
// to Auto when the finder is missing or has no answer.
func ForCoordinates(f Finder, latitude, longitude float64) string {
	if f == nil {
		return Auto
	}
	name, err := f.GetTimezone(latitude, longitude)
	if err != nil {
		return Auto
	}
	return name
}
