// Package metrics exposes Prometheus collectors for due date calculations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for Calculations.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidSubmitTime = "invalid_submit_time"
	OutcomeInvalidTurnaround = "invalid_turnaround"
	OutcomeInvalidRequest    = "invalid_request"
)

var (
	Calculations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "turnaround_calculations_total",
		Help: "Total due date calculations by outcome",
	}, []string{"outcome"})
	RequestedHours = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "turnaround_requested_hours",
		Help:    "Turnaround hours requested per successful calculation",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 24, 40, 80, 160},
	})
	RolloverDays = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "turnaround_rollover_days",
		Help:    "Calendar days between submission and due date",
		Buckets: prometheus.LinearBuckets(0, 1, 8),
	})
	BatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "turnaround_batch_size",
		Help:    "Submissions per batch request",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(Calculations, RequestedHours, RolloverDays, BatchSize)
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveCalculation records a successful calculation.
func ObserveCalculation(hours, rolloverDays int) {
	Calculations.WithLabelValues(OutcomeOK).Inc()
	RequestedHours.Observe(float64(hours))
	RolloverDays.Observe(float64(rolloverDays))
}

// IncRejected increments the rejection counter for an outcome.
func IncRejected(outcome string) { Calculations.WithLabelValues(outcome).Inc() }

// ObserveBatch records the size of a batch.
func ObserveBatch(size int) { BatchSize.Observe(float64(size)) }
