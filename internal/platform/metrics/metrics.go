package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	CacheLookups    *prometheus.CounterVec
	RowsLoaded      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "newsdesk_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route, method and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsdesk_report_cache_lookups_total",
				Help: "Report cache lookups, by report and result (hit or miss).",
			},
			[]string{"report", "result"},
		),
		RowsLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsdesk_rows_loaded_total",
				Help: "Rows inserted by bulk loads, by table.",
			},
			[]string{"table"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.CacheLookups,
		m.RowsLoaded,
	)
	return m
}

// Handler serves the Prometheus exposition format on a fiber route.
func (m *Metrics) Handler() fiber.Handler {
	h := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	return func(c *fiber.Ctx) error {
		h(c.Context())
		return nil
	}
}

// Middleware observes request durations. Register it before the request
// logger so error statuses are final when observed.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		m.RequestDuration.
			WithLabelValues(route, c.Method(), strconv.Itoa(c.Response().StatusCode())).
			Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *Metrics) CacheHit(report string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(report, "hit").Inc()
}

func (m *Metrics) CacheMiss(report string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(report, "miss").Inc()
}

func (m *Metrics) ObserveLoad(table string, rows int64) {
	if m == nil {
		return
	}
	m.RowsLoaded.WithLabelValues(table).Add(float64(rows))
}
