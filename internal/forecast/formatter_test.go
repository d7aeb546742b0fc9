package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"weather-dashboard/internal/types"
)

var testZone = time.FixedZone("UTC+2", 2*60*60)

// buildPayload returns an hourly series from 00:00 of start for the given
// number of days and one daily entry per day.
func buildPayload(start time.Time, days int) *Payload {
	p := &Payload{Location: testZone}
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		p.Daily.Dates = append(p.Daily.Dates, date)
		p.Daily.TempMax = append(p.Daily.TempMax, 20.5+float64(d))
		p.Daily.TempMin = append(p.Daily.TempMin, 9.4+float64(d))
		p.Daily.Precipitation = append(p.Daily.Precipitation, 0.25*float64(d))
		p.Daily.WeatherCodes = append(p.Daily.WeatherCodes, types.WeatherCode(d))
		for h := 0; h < 24; h++ {
			p.Hourly.Times = append(p.Hourly.Times, date.Add(time.Duration(h)*time.Hour))
			p.Hourly.Temperatures = append(p.Hourly.Temperatures, float64(h)-4.6)
			p.Hourly.WindSpeeds = append(p.Hourly.WindSpeeds, 3.4)
			p.Hourly.WeatherCodes = append(p.Hourly.WeatherCodes, types.PartlyCloudy)
		}
	}
	return p
}

func TestDaily_ExcludesToday(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, testZone)
	now := today.Add(15*time.Hour + 20*time.Minute)
	p := buildPayload(today, 3)

	got := Daily(p, now)

	want := []Day{
		{
			Date:          today.AddDate(0, 0, 1),
			Label:         "Wed, Jun 11",
			Code:          types.MainlyClear,
			Condition:     types.LookupCondition(types.MainlyClear),
			TempMax:       22,
			TempMin:       10,
			Precipitation: 0.25,
		},
		{
			Date:          today.AddDate(0, 0, 2),
			Label:         "Thu, Jun 12",
			Code:          types.PartlyCloudy,
			Condition:     types.LookupCondition(types.PartlyCloudy),
			TempMax:       23,
			TempMin:       11,
			Precipitation: 0.5,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Daily() mismatch (-want +got):\n%s", diff)
	}
}

func TestDaily_UsesPayloadZoneForToday(t *testing.T) {
	// 23:30 UTC on Jun 9 is already Jun 10 in the payload zone.
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, testZone)
	now := time.Date(2025, 6, 9, 23, 30, 0, 0, time.UTC)
	p := buildPayload(today, 3)

	got := Daily(p, now)
	if len(got) != 2 {
		t.Fatalf("Daily() returned %d entries, want 2", len(got))
	}
	if !got[0].Date.Equal(today.AddDate(0, 0, 1)) {
		t.Errorf("first entry date = %v, want %v", got[0].Date, today.AddDate(0, 0, 1))
	}
}

func TestHourly_OnlyToday(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, testZone)
	now := today.Add(15 * time.Hour)
	p := buildPayload(today.AddDate(0, 0, -1), 3)

	got := Hourly(p, now)
	if len(got) != 24 {
		t.Fatalf("Hourly() returned %d entries, want 24", len(got))
	}
	for i, h := range got {
		want := today.Add(time.Duration(i) * time.Hour)
		if !h.Time.Equal(want) {
			t.Errorf("entry %d time = %v, want %v", i, h.Time, want)
		}
	}
	if got[0].Label != "00:00" || got[9].Label != "09:00" || got[23].Label != "23:00" {
		t.Errorf("labels = %q, %q, %q; want 00:00, 09:00, 23:00", got[0].Label, got[9].Label, got[23].Label)
	}
	// hour 0 is -4.6°C
	if got[0].Temperature != -5 {
		t.Errorf("entry 0 temperature = %d, want -5", got[0].Temperature)
	}
}

func TestBarHeight(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		want        float64
	}{
		{name: "very cold hits floor", temperature: -30, want: 20},
		{name: "exactly at floor", temperature: -10, want: 20},
		{name: "freezing", temperature: 0, want: 40},
		{name: "warm", temperature: 25.5, want: 91},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BarHeight(tt.temperature); got != tt.want {
				t.Errorf("BarHeight(%v) = %v, want %v", tt.temperature, got, tt.want)
			}
		})
	}
}

func TestSelectCurrent(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, testZone)
	p := buildPayload(today, 2)

	tests := []struct {
		name     string
		now      time.Time
		wantTime time.Time
		wantErr  error
	}{
		{
			name:     "mid-afternoon rounds up to next hour",
			now:      today.Add(15*time.Hour + 20*time.Minute),
			wantTime: today.Add(16 * time.Hour),
		},
		{
			name:     "exact hour is selected",
			now:      today.Add(15 * time.Hour),
			wantTime: today.Add(15 * time.Hour),
		},
		{
			name:     "before payload starts",
			now:      today.Add(-3 * time.Hour),
			wantTime: today,
		},
		{
			name:    "payload exhausted",
			now:     today.AddDate(0, 0, 2).Add(time.Minute),
			wantErr: ErrNoCurrentEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectCurrent(p, tt.now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SelectCurrent() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectCurrent() unexpected error = %v", err)
			}
			if !got.Time.Equal(tt.wantTime) {
				t.Errorf("SelectCurrent() time = %v, want %v", got.Time, tt.wantTime)
			}
			if got.WindSpeed != 3 {
				t.Errorf("SelectCurrent() wind = %d, want 3", got.WindSpeed)
			}
			if got.Condition.Description != "Partly cloudy" {
				t.Errorf("SelectCurrent() description = %q, want Partly cloudy", got.Condition.Description)
			}
		})
	}
}

func TestSelectCurrent_EmptyPayload(t *testing.T) {
	_, err := SelectCurrent(&Payload{}, time.Now())
	if !errors.Is(err, ErrNoCurrentEntry) {
		t.Errorf("SelectCurrent() error = %v, want ErrNoCurrentEntry", err)
	}
}

func TestPayload_Validate(t *testing.T) {
	today := time.Date(2025, 6, 10, 0, 0, 0, 0, testZone)

	tests := []struct {
		name    string
		mutate  func(p *Payload)
		wantErr bool
	}{
		{
			name:   "well formed",
			mutate: func(p *Payload) {},
		},
		{
			name: "hourly length mismatch",
			mutate: func(p *Payload) {
				p.Hourly.Temperatures = p.Hourly.Temperatures[:3]
			},
			wantErr: true,
		},
		{
			name: "daily length mismatch",
			mutate: func(p *Payload) {
				p.Daily.WeatherCodes = append(p.Daily.WeatherCodes, types.ClearSky)
			},
			wantErr: true,
		},
		{
			name: "hourly not increasing",
			mutate: func(p *Payload) {
				p.Hourly.Times[5] = p.Hourly.Times[4]
			},
			wantErr: true,
		},
		{
			name: "daily out of order",
			mutate: func(p *Payload) {
				p.Daily.Dates[0], p.Daily.Dates[1] = p.Daily.Dates[1], p.Daily.Dates[0]
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildPayload(today, 2)
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("Validate() error = %v, want ErrInvalidPayload", err)
			}
		})
	}
}
