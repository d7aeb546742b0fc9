package forecast

import (
	"errors"
	"fmt"
	"math"
	"time"

	"weather-dashboard/internal/types"
)

// ErrNoCurrentEntry is returned when no hourly entry is at or after now
var ErrNoCurrentEntry = errors.New("forecast has no hourly entry at or after now")

const (
	dayLabelLayout  = "Mon, Jan 2"
	hourLabelLayout = "15:04"

	minBarHeight = 20.0
)

// Current is the current-conditions panel record
type Current struct {
	Time        time.Time         `json:"time"`
	Temperature int               `json:"temperature"`
	WindSpeed   int               `json:"windSpeed"`
	Code        types.WeatherCode `json:"code"`
	Condition   types.Condition   `json:"condition"`
}

// Day is one entry of the multi-day forecast list
type Day struct {
	Date          time.Time         `json:"date"`
	Label         string            `json:"label"`
	Code          types.WeatherCode `json:"code"`
	Condition     types.Condition   `json:"condition"`
	TempMax       int               `json:"tempMax"`
	TempMin       int               `json:"tempMin"`
	Precipitation float64           `json:"precipitation"`
}

// Hour is one block of the intra-day timeline
type Hour struct {
	Time        time.Time         `json:"time"`
	Label       string            `json:"label"`
	Temperature int               `json:"temperature"`
	Value       float64           `json:"value"` // unrounded °C
	Code        types.WeatherCode `json:"code"`
	Condition   types.Condition   `json:"condition"`
	BarHeight   float64           `json:"barHeight"`
}

// SelectCurrent picks the first hourly entry whose timestamp is >= now
func SelectCurrent(p *Payload, now time.Time) (Current, error) {
	h := p.Hourly
	for i, t := range h.Times {
		if t.Before(now) {
			continue
		}
		return Current{
			Time:        t,
			Temperature: round(h.Temperatures[i]),
			WindSpeed:   round(h.WindSpeeds[i]),
			Code:        h.WeatherCodes[i],
			Condition:   types.LookupCondition(h.WeatherCodes[i]),
		}, nil
	}
	return Current{}, fmt.Errorf("%w: %d hourly entries, now=%s", ErrNoCurrentEntry, h.Len(), now.Format(time.RFC3339))
}

// Daily returns the daily entries strictly after today's local date, in order
func Daily(p *Payload, now time.Time) []Day {
	loc := p.local()
	today := civilDate(now.In(loc))

	d := p.Daily
	days := make([]Day, 0, d.Len())
	for i, date := range d.Dates {
		if !civilDate(date.In(loc)).After(today) {
			continue
		}
		days = append(days, Day{
			Date:          date,
			Label:         date.In(loc).Format(dayLabelLayout),
			Code:          d.WeatherCodes[i],
			Condition:     types.LookupCondition(d.WeatherCodes[i]),
			TempMax:       round(d.TempMax[i]),
			TempMin:       round(d.TempMin[i]),
			Precipitation: d.Precipitation[i],
		})
	}
	return days
}

// Hourly returns the hourly entries on today's local date, in order
func Hourly(p *Payload, now time.Time) []Hour {
	loc := p.local()
	today := civilDate(now.In(loc))

	h := p.Hourly
	hours := make([]Hour, 0, 24)
	for i, t := range h.Times {
		if !civilDate(t.In(loc)).Equal(today) {
			continue
		}
		hours = append(hours, Hour{
			Time:        t,
			Label:       t.In(loc).Format(hourLabelLayout),
			Temperature: round(h.Temperatures[i]),
			Value:       h.Temperatures[i],
			Code:        h.WeatherCodes[i],
			Condition:   types.LookupCondition(h.WeatherCodes[i]),
			BarHeight:   BarHeight(h.Temperatures[i]),
		})
	}
	return hours
}

// BarHeight is the timeline bar height in pixels: a linear scale shared by
// all bars, floored at 20 so very cold hours stay visible.
func BarHeight(temperature float64) float64 {
	return math.Max(minBarHeight, (temperature+20)*2)
}

// round rounds to the nearest integer, halves toward positive infinity
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// civilDate truncates t to midnight in its own location
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
