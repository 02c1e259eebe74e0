// Package metrics exposes request and store metrics in Prometheus format.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jordache-jozz8/BA-system/internal/db"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const namespace = "booking"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	log      zerolog.Logger
}

// New registers the HTTP collectors plus gauges that sample the store sizes
// at scrape time.
func New(stores *db.Stores, log zerolog.Logger) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		log: log,
	}

	m.Registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reservations",
			Help:      "Reservations currently held.",
		}, func() float64 {
			rs, err := stores.Reservations.List(context.Background())
			if err != nil {
				m.log.Error().Err(err).Msg("metrics: list reservations")
				return 0
			}
			return float64(len(rs))
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "customers",
			Help:      "Customers currently held.",
		}, func() float64 {
			cs, err := stores.Customers.List(context.Background())
			if err != nil {
				m.log.Error().Err(err).Msg("metrics: list customers")
				return 0
			}
			return float64(len(cs))
		}),
	)
	return m
}

// Observe records one finished request.
func (m *Metrics) Observe(method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		ErrorLog:      m,
		ErrorHandling: promhttp.ContinueOnError,
	})
}

// Println implements promhttp.Logger.
func (m *Metrics) Println(v ...interface{}) {
	m.log.Error().Msg(fmt.Sprint(v...))
}
