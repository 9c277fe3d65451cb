// Package metrics exposes route-query metrics in the Prometheus format.
package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes used as the "outcome" label.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Collector owns a private registry and the route-query metrics.
type Collector struct {
	reg *prometheus.Registry

	Queries        *prometheus.CounterVec // outcome label: found|unreachable|error
	SearchDuration prometheus.Histogram
	Settled        prometheus.Histogram

	NetworkStations prometheus.Gauge
	NetworkRoutes   prometheus.Gauge
}

// NewCollector registers all metrics on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tanroute_queries_total",
			Help: "Route queries by outcome.",
		}, []string{"outcome"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tanroute_search_duration_seconds",
			Help:    "Duration of shortest-path searches.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 15),
		}),
		Settled: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tanroute_settled_stations",
			Help:    "Stations settled before a search stopped.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
		NetworkStations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tanroute_network_stations",
			Help: "Stations in the loaded network.",
		}),
		NetworkRoutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tanroute_network_routes",
			Help: "Directed routes in the loaded network.",
		}),
	}

	reg.MustRegister(c.Queries, c.SearchDuration, c.Settled, c.NetworkStations, c.NetworkRoutes)

	return c
}

// ObserveQuery records one search.
func (c *Collector) ObserveQuery(outcome string, d time.Duration, settled int) {
	c.Queries.WithLabelValues(outcome).Inc()
	c.SearchDuration.Observe(d.Seconds())
	if outcome != OutcomeError {
		c.Settled.Observe(float64(settled))
	}
}

// SetNetwork publishes the size of the loaded network.
func (c *Collector) SetNetwork(stations, routes int) {
	c.NetworkStations.Set(float64(stations))
	c.NetworkRoutes.Set(float64(routes))
}

// Handler serves the collector's registry.
func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	logger.Info("metrics listening", "addr", addr)
	return srv
}
