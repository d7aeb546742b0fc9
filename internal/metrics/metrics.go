package metrics

import (
	"net/http"
	"strconv"

	"weather-dashboard/internal/sequencer"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weather_dashboard"

// Metrics owns a private registry so tests and multiple apps do not collide
// on the global one.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	lookups         *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
	chartRenders    prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Location lookups by origin and final outcome.",
			},
			[]string{"origin", "outcome"},
		),
		providerLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Latency of upstream weather and geocoding requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider", "code", "method"},
		),
		chartRenders: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "chart_renders_total",
				Help:      "Temperature charts rendered.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.lookups,
		m.providerLatency,
		m.chartRenders,
	)
	return m
}

// RecordLookup implements sequencer.Recorder
func (m *Metrics) RecordLookup(origin sequencer.Origin, outcome string) {
	m.lookups.WithLabelValues(string(origin), outcome).Inc()
}

func (m *Metrics) RecordChartRender() {
	m.chartRenders.Inc()
}

// HTTPClient returns a client whose round trips are timed under the given
// provider label.
func (m *Metrics) HTTPClient(provider string, base *http.Client) *http.Client {
	if base == nil {
		base = &http.Client{}
	}
	next := base.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	observer := m.providerLatency.MustCurryWith(prometheus.Labels{"provider": provider})

	client := *base
	client.Transport = promhttp.InstrumentRoundTripperDuration(observer, next)
	return &client
}

// Middleware counts requests per matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
