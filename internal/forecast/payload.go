package forecast

import (
	"errors"
	"fmt"
	"time"

	"weather-dashboard/internal/types"
)

// ErrInvalidPayload marks a payload whose parallel arrays disagree
var ErrInvalidPayload = errors.New("invalid forecast payload")

// Payload is a provider forecast already parsed into local time.
// All slices within Hourly share one length, as do all slices within Daily.
type Payload struct {
	Location *time.Location
	Hourly   HourlySeries
	Daily    DailySeries
}

type HourlySeries struct {
	Times        []time.Time
	Temperatures []float64 // °C
	WindSpeeds   []float64
	WeatherCodes []types.WeatherCode
}

type DailySeries struct {
	Dates         []time.Time // midnight, local
	TempMax       []float64
	TempMin       []float64
	Precipitation []float64 // mm
	WeatherCodes  []types.WeatherCode
}

func (h HourlySeries) Len() int { return len(h.Times) }

func (d DailySeries) Len() int { return len(d.Dates) }

// Validate checks equal lengths and strictly increasing timestamps
func (p *Payload) Validate() error {
	h := p.Hourly
	n := h.Len()
	if len(h.Temperatures) != n || len(h.WindSpeeds) != n || len(h.WeatherCodes) != n {
		return fmt.Errorf("%w: hourly arrays have unequal lengths (time=%d, temperature=%d, wind=%d, code=%d)",
			ErrInvalidPayload, n, len(h.Temperatures), len(h.WindSpeeds), len(h.WeatherCodes))
	}
	if err := strictlyIncreasing(h.Times); err != nil {
		return fmt.Errorf("%w: hourly %v", ErrInvalidPayload, err)
	}

	d := p.Daily
	m := d.Len()
	if len(d.TempMax) != m || len(d.TempMin) != m || len(d.Precipitation) != m || len(d.WeatherCodes) != m {
		return fmt.Errorf("%w: daily arrays have unequal lengths (time=%d, max=%d, min=%d, precipitation=%d, code=%d)",
			ErrInvalidPayload, m, len(d.TempMax), len(d.TempMin), len(d.Precipitation), len(d.WeatherCodes))
	}
	if err := strictlyIncreasing(d.Dates); err != nil {
		return fmt.Errorf("%w: daily %v", ErrInvalidPayload, err)
	}
	return nil
}

func strictlyIncreasing(ts []time.Time) error {
	for i := 1; i < len(ts); i++ {
		if !ts[i].After(ts[i-1]) {
			return fmt.Errorf("timestamps not strictly increasing at index %d", i)
		}
	}
	return nil
}

// local returns the payload's zone, defaulting to UTC
func (p *Payload) local() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
