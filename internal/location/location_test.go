package location

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"weather-dashboard/internal/providers/openmeteo"
	"weather-dashboard/internal/providers/openstreetmap"
	"weather-dashboard/internal/types"

	"github.com/google/go-cmp/cmp"
)

// Mock providers for testing

type mockGeocodeProvider struct {
	results   []openmeteo.GeocodingResult
	err       error
	calls     int
	lastName  string
	lastCount int
}

func (m *mockGeocodeProvider) Search(ctx context.Context, name string, count int) ([]openmeteo.GeocodingResult, error) {
	m.calls++
	m.lastName = name
	m.lastCount = count
	return m.results, m.err
}

type mockReverseProvider struct {
	response *openstreetmap.ReverseAPIResponse
	err      error
}

func (m *mockReverseProvider) Reverse(ctx context.Context, latitude, longitude float64) (*openstreetmap.ReverseAPIResponse, error) {
	return m.response, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var berlinResults = []openmeteo.GeocodingResult{
	{Name: "Berlin", Country: "Germany", Latitude: 52.52437, Longitude: 13.41053},
	{Name: "Berlin", Country: "United States", Latitude: 44.46867, Longitude: -71.18508},
	{Name: "Berlingo", Latitude: 1, Longitude: 2},
}

func TestService_Suggest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		results   []openmeteo.GeocodingResult
		err       error
		want      []types.Place
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "too short skips provider",
			query:     "B",
			want:      []types.Place{},
			wantCalls: 0,
		},
		{
			name:      "whitespace only skips provider",
			query:     "   ",
			want:      []types.Place{},
			wantCalls: 0,
		},
		{
			name:    "ranked candidates",
			query:   "Ber",
			results: berlinResults,
			want: []types.Place{
				{Name: "Berlin", Country: "Germany", Latitude: 52.52437, Longitude: 13.41053},
				{Name: "Berlin", Country: "United States", Latitude: 44.46867, Longitude: -71.18508},
				{Name: "Berlingo", Latitude: 1, Longitude: 2},
			},
			wantCalls: 1,
		},
		{
			name:      "provider error",
			query:     "Ber",
			err:       errors.New("boom"),
			wantCalls: 1,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo := &mockGeocodeProvider{results: tt.results, err: tt.err}
			svc := NewService(geo, &mockReverseProvider{}, testLogger())

			got, err := svc.Suggest(context.Background(), tt.query, 5)
			if geo.calls != tt.wantCalls {
				t.Errorf("provider calls = %d, want %d", geo.calls, tt.wantCalls)
			}
			if tt.wantErr {
				if err == nil {
					t.Error("Suggest() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Suggest() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Suggest() mismatch (-want +got):\n%s", diff)
			}
			if tt.wantCalls > 0 && geo.lastCount != 5 {
				t.Errorf("count = %d, want 5", geo.lastCount)
			}
		})
	}
}

func TestService_Resolve(t *testing.T) {
	t.Run("best match", func(t *testing.T) {
		geo := &mockGeocodeProvider{results: berlinResults[:1]}
		svc := NewService(geo, &mockReverseProvider{}, testLogger())

		got, err := svc.Resolve(context.Background(), "Berlin")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		want := types.NewLocation(52.52437, 13.41053, "Berlin, Germany")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
		}
		if geo.lastCount != 1 {
			t.Errorf("count = %d, want 1", geo.lastCount)
		}
	})

	t.Run("no match", func(t *testing.T) {
		svc := NewService(&mockGeocodeProvider{results: []openmeteo.GeocodingResult{}}, &mockReverseProvider{}, testLogger())
		_, err := svc.Resolve(context.Background(), "Atlantis")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("Resolve() error = %v, want ErrNoMatch", err)
		}
	})

	t.Run("provider error is not NoMatch", func(t *testing.T) {
		svc := NewService(&mockGeocodeProvider{err: errors.New("timeout")}, &mockReverseProvider{}, testLogger())
		_, err := svc.Resolve(context.Background(), "Berlin")
		if err == nil || errors.Is(err, ErrNoMatch) {
			t.Errorf("Resolve() error = %v, want wrapped provider error", err)
		}
		if err != nil && !strings.Contains(err.Error(), "failed to resolve city") {
			t.Errorf("Resolve() error = %v, want wrapped message", err)
		}
	})
}

func TestService_Name(t *testing.T) {
	tests := []struct {
		name     string
		response *openstreetmap.ReverseAPIResponse
		err      error
		want     string
	}{
		{
			name: "city preferred",
			response: &openstreetmap.ReverseAPIResponse{
				DisplayName: "Mitte, Berlin, Germany",
				Address:     openstreetmap.Address{City: "Berlin", Town: "Mitte"},
			},
			want: "Berlin",
		},
		{
			name: "town when no city",
			response: &openstreetmap.ReverseAPIResponse{
				DisplayName: "Aspen, Pitkin County, Colorado, United States",
				Address:     openstreetmap.Address{Town: "Aspen"},
			},
			want: "Aspen",
		},
		{
			name:     "display name fallback",
			response: &openstreetmap.ReverseAPIResponse{DisplayName: "Pitkin County, Colorado"},
			want:     "Pitkin County, Colorado",
		},
		{
			name:     "empty response",
			response: &openstreetmap.ReverseAPIResponse{},
			want:     types.UnknownLocationName,
		},
		{
			name: "provider failure",
			err:  errors.New("fetch returned status 503: busy"),
			want: types.UnknownLocationName,
		},
		{
			name: "nil response",
			want: types.UnknownLocationName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&mockGeocodeProvider{}, &mockReverseProvider{response: tt.response, err: tt.err}, testLogger())
			got := svc.Name(context.Background(), types.NewCoords(39.1, -107.6))
			if got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}
