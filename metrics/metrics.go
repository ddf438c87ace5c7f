// Package metrics provides Prometheus instrumentation for design analyses.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records analysis metrics on one registry.
type Recorder struct {
	analyses *prometheus.CounterVec
	duration prometheus.Histogram
	parts    prometheus.Histogram
	failures *prometheus.CounterVec
}

// New registers the analysis metrics on reg.
// A nil reg falls back to a private registry, which is handy in tests.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Recorder{
		analyses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvdesign_analyses_total",
				Help: "Total number of completed design analyses",
			},
			[]string{"valid"},
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvdesign_analysis_duration_seconds",
				Help:    "Time taken to analyze one design",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		),
		parts: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lvdesign_design_parts",
				Help:    "Number of parts per analyzed design",
				Buckets: []float64{1, 10, 25, 50, 100, 250, 500, 1000},
			},
		),
		failures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvdesign_analysis_errors_total",
				Help: "Total number of analyses that did not complete",
			},
			[]string{"reason"},
		),
	}
}

// RecordAnalysis records one completed analysis.
func (r *Recorder) RecordAnalysis(valid bool, parts int, duration time.Duration) {
	if r == nil {
		return
	}
	r.analyses.WithLabelValues(strconv.FormatBool(valid)).Inc()
	r.duration.Observe(duration.Seconds())
	r.parts.Observe(float64(parts))
}

// RecordError records an analysis aborted for reason.
func (r *Recorder) RecordError(reason string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(reason).Inc()
}
