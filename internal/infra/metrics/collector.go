// Package metrics exposes prometheus measurements for the proximity engine,
// the drop feed and the HTTP surface.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"zumap/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	PassDuration  prometheus.Histogram
	PassMarkers   prometheus.Histogram
	Collects      *prometheus.CounterVec
	FeedDrops     prometheus.Gauge
	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

var _ service.Metrics = (*Collector)(nil)

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil. Registering twice reuses the existing collectors.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	passDuration, err := register(reg, prometheus.Histogram(prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "evaluation_pass_duration_seconds",
		Help:      "Time spent grouping, evaluating and presenting one snapshot of drops.",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})))
	if err != nil {
		return nil, err
	}

	passMarkers, err := register(reg, prometheus.Histogram(prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "evaluation_pass_markers",
		Help:      "Number of markers produced by one evaluation pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})))
	if err != nil {
		return nil, err
	}

	collects, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collect_attempts_total",
		Help:      "Collect attempts labeled by outcome.",
	}, []string{"outcome"}))
	if err != nil {
		return nil, err
	}

	feedDrops, err := register(reg, prometheus.Gauge(prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_drops",
		Help:      "Drops in the current feed snapshot.",
	})))
	if err != nil {
		return nil, err
	}

	httpRequests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Handled HTTP requests labeled by method, route and status code.",
	}, []string{"method", "route", "code"}))
	if err != nil {
		return nil, err
	}

	httpDurations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "route"}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		PassDuration:  passDuration,
		PassMarkers:   passMarkers,
		Collects:      collects,
		FeedDrops:     feedDrops,
		HTTPRequests:  httpRequests,
		HTTPDurations: httpDurations,
	}, nil
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// ObservePass implements service.Metrics.
func (c *Collector) ObservePass(duration time.Duration, markers int) {
	if c == nil {
		return
	}
	c.PassDuration.Observe(duration.Seconds())
	c.PassMarkers.Observe(float64(markers))
}

// CountCollect implements service.Metrics.
func (c *Collector) CountCollect(outcome string) {
	if c == nil {
		return
	}
	c.Collects.WithLabelValues(outcome).Inc()
}

// SetFeedSize implements service.Metrics.
func (c *Collector) SetFeedSize(drops int) {
	if c == nil {
		return
	}
	c.FeedDrops.Set(float64(drops))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies by route template.
func (c *Collector) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		if err := next(ctx); err != nil {
			// Commit the error response so the recorded status is the real one.
			ctx.Error(err)
		}

		status := ctx.Response().Status

		route := ctx.Path()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request().Method

		c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return nil
	}
}

// register adds collector to reg, returning the already registered instance
// when an identical collector exists.
func register[T prometheus.Collector](reg prometheus.Registerer, collector T) (T, error) {
	if err := reg.Register(collector); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return collector, err
		}
		existing, ok := are.ExistingCollector.(T)
		if !ok {
			var zero T

			return zero, fmt.Errorf("collector %T already registered with incompatible type", collector)
		}

		return existing, nil
	}

	return collector, nil
}

type noop struct{}

// NewNoop returns a service.Metrics that records nothing.
func NewNoop() service.Metrics {
	return noop{}
}

func (noop) ObservePass(time.Duration, int) {}

func (noop) CountCollect(string) {}

func (noop) SetFeedSize(int) {}
