package openstreetmap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_Reverse(t *testing.T) {
	var gotUA, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotFormat = r.URL.Query().Get("format")
		_, _ = io.WriteString(w, `{
			"place_id": 123,
			"display_name": "Mitte, Berlin, Germany",
			"address": {"city": "Berlin", "country": "Germany", "country_code": "de"}
		}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-agent/0.1", 100, srv.Client(), testLogger())
	resp, err := client.Reverse(context.Background(), 52.52, 13.41)
	if err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}

	if gotUA != "test-agent/0.1" {
		t.Errorf("User-Agent = %q, want test-agent/0.1", gotUA)
	}
	if gotFormat != "jsonv2" {
		t.Errorf("format = %q, want jsonv2", gotFormat)
	}
	if resp.Address.City != "Berlin" {
		t.Errorf("Address.City = %q, want Berlin", resp.Address.City)
	}
	if resp.DisplayName != "Mitte, Berlin, Germany" {
		t.Errorf("DisplayName = %q, unexpected", resp.DisplayName)
	}
}

func TestClient_Reverse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "unable to geocode", status: http.StatusOK, body: `{"error":"Unable to geocode"}`, wantErr: ErrUnableToGeocode},
		{name: "server error", status: http.StatusServiceUnavailable, body: `busy`},
		{name: "malformed body", status: http.StatusOK, body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "", 100, srv.Client(), testLogger())
			_, err := client.Reverse(context.Background(), 0, 0)
			if err == nil {
				t.Fatal("Reverse() expected error but got none")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Reverse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_Reverse_RateLimitHonorsContext(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = io.WriteString(w, `{"display_name":"x"}`)
	}))
	defer srv.Close()

	// one request per minute: the second call must wait and give up on the deadline
	client := NewClient(srv.URL, "", 1.0/60, srv.Client(), testLogger())
	if _, err := client.Reverse(context.Background(), 0, 0); err != nil {
		t.Fatalf("first Reverse() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.Reverse(ctx, 0, 0); err == nil {
		t.Error("second Reverse() expected rate limit error")
	}
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1", calls)
	}
}
