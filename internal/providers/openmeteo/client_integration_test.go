//go:build integration

package openmeteo

import (
	"context"
	"encoding/json"
	"testing"
)

func TestForecastClient_GetForecast_Integration(t *testing.T) {
	// Test coordinates: Berlin
	lat := 52.52
	lon := 13.41
	forecastDays := 8

	client := NewForecastClient("", nil, testLogger())

	t.Logf("Making API call to OpenMeteo Forecast API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.GetForecast(context.Background(), lat, lon, forecastDays, TimezoneAuto)
	if err != nil {
		t.Fatalf("Failed to get forecast: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp.Daily, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Daily:\n%s", string(rawJSON))

	if resp.Timezone == "" {
		t.Error("Timezone is empty")
	}
	if len(resp.Daily.Time) != forecastDays {
		t.Errorf("Expected %d daily entries, got %d", forecastDays, len(resp.Daily.Time))
	}
	if len(resp.Hourly.Time) != forecastDays*24 {
		t.Errorf("Expected %d hourly entries, got %d", forecastDays*24, len(resp.Hourly.Time))
	}
	if len(resp.Hourly.Temperature2M) != len(resp.Hourly.Time) {
		t.Error("Hourly temperature and time arrays differ in length")
	}

	t.Log("✓ API call successful, response structure valid")
}

func TestGeocodingClient_Search_Integration(t *testing.T) {
	client := NewGeocodingClient("", nil, testLogger())

	results, err := client.Search(context.Background(), "Berlin", 5)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("Expected at least one result for Berlin")
	}
	t.Logf("Top result: %s, %s (%f, %f)", results[0].Name, results[0].Country, results[0].Latitude, results[0].Longitude)
}
