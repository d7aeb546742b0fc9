package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-dashboard/internal/sequencer"

	"github.com/gin-gonic/gin"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d, want 200", rec.Code)
	}
	return rec.Body.String()
}

func TestMetrics_RecordLookup(t *testing.T) {
	m := New()
	var _ sequencer.Recorder = m

	m.RecordLookup(sequencer.OriginSearch, string(sequencer.StateRendered))
	m.RecordLookup(sequencer.OriginSearch, string(sequencer.StateRendered))
	m.RecordLookup(sequencer.OriginGeolocation, string(sequencer.StateSuperseded))
	m.RecordChartRender()

	body := scrape(t, m)
	for _, want := range []string{
		`weather_dashboard_lookups_total{origin="search",outcome="rendered"} 2`,
		`weather_dashboard_lookups_total{origin="geolocation",outcome="superseded"} 1`,
		`weather_dashboard_chart_renders_total 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape missing %q", want)
		}
	}
}

func TestMetrics_HTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	defer srv.Close()

	m := New()
	client := m.HTTPClient("openmeteo", srv.Client())

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	_ = resp.Body.Close()

	body := scrape(t, m)
	want := `weather_dashboard_provider_request_duration_seconds_count{code="200",method="get",provider="openmeteo"} 1`
	if !strings.Contains(body, want) {
		t.Errorf("scrape missing %q", want)
	}
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	body := scrape(t, m)
	for _, want := range []string{
		`weather_dashboard_http_requests_total{method="GET",route="/ping",status="200"} 3`,
		`weather_dashboard_http_requests_total{method="GET",route="unmatched",status="404"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("scrape missing %q", want)
		}
	}
}
