package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is registered on its own registry so several servers (tests) can
// coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal  *prometheus.CounterVec
	scrapesTotal   *prometheus.CounterVec
	scrapeDuration *prometheus.HistogramVec
	recordsTotal   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mangaread",
				Subsystem: "api",
				Name:      "requests_total",
				Help:      "Total number of API requests served",
			},
			[]string{"method", "route", "status_code"},
		),
		scrapesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mangaread",
				Subsystem: "scraper",
				Name:      "scrapes_total",
				Help:      "Total number of page scrapes by listing and outcome",
			},
			[]string{"provider", "listing", "outcome"},
		),
		scrapeDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "mangaread",
				Subsystem: "scraper",
				Name:      "scrape_duration_seconds",
				Help:      "Time spent fetching and extracting one page",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider", "listing"},
		),
		recordsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mangaread",
				Subsystem: "scraper",
				Name:      "records_extracted_total",
				Help:      "Total number of records extracted",
			},
			[]string{"provider", "listing"},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) recordRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) recordScrape(provider, listing string, start time.Time, records int, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case records == 0:
		outcome = "empty"
	}

	m.scrapesTotal.WithLabelValues(provider, listing, outcome).Inc()
	m.scrapeDuration.WithLabelValues(provider, listing).Observe(time.Since(start).Seconds())
	if records > 0 {
		m.recordsTotal.WithLabelValues(provider, listing).Add(float64(records))
	}
}
