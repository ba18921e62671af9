// Package metrics exposes search client metrics to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/sercha-view/internal/core/ports/driven"
)

const namespace = "sercha_view"

// Ensure Recorder implements the interface.
var _ driven.SearchObserver = (*Recorder)(nil)

// Recorder records search events as Prometheus metrics.
type Recorder struct {
	searches       *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	staleResponses prometheus.Counter
	renderFallback prometheus.Counter
}

// NewRecorder creates a recorder registered with reg.
// Registering twice against the same registry reuses the existing collectors.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "search_requests_total",
				Help:      "Total number of search requests by outcome",
			},
			[]string{"outcome"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_request_duration_seconds",
				Help:      "Search round trip duration in seconds, rendering included",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"outcome"},
		),
		staleResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_responses_discarded_total",
			Help:      "Responses dropped because a newer request was already issued",
		}),
		renderFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_fallbacks_total",
			Help:      "Markdown conversions that failed and fell back to raw text",
		}),
	}

	if err := registerOrReuse(reg, &r.searches); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &r.searchDuration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &r.staleResponses); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &r.renderFallback); err != nil {
		return nil, err
	}
	return r, nil
}

// SearchCompleted records one backend round trip.
func (r *Recorder) SearchCompleted(outcome string, elapsed time.Duration) {
	r.searches.WithLabelValues(outcome).Inc()
	r.searchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// StaleResponseDiscarded records a dropped out-of-order response.
func (r *Recorder) StaleResponseDiscarded() {
	r.staleResponses.Inc()
}

// RenderFallback records a markdown conversion failure.
func (r *Recorder) RenderFallback() {
	r.renderFallback.Inc()
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("metrics: already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("metrics: register: %w", err)
	}
	return nil
}
