//go:build integration

package openstreetmap

import (
	"context"
	"encoding/json"
	"testing"
)

func TestClient_Reverse_Integration(t *testing.T) {
	// Test coordinates: Berlin
	lat := 52.52
	lon := 13.41

	client := NewClient("", "", 1, nil, testLogger())

	t.Logf("Making API call to OpenStreetMap Nominatim API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Reverse(context.Background(), lat, lon)
	if err != nil {
		t.Fatalf("Failed to get location data: %v", err)
	}

	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
	if resp.Address.City == "" && resp.Address.Town == "" {
		t.Logf("no city or town in address: %+v", resp.Address)
	}

	t.Log("✓ API call successful, response structure valid")
}
