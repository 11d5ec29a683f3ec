package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PipelineRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enhancer_pipeline_runs_total",
			Help: "Total number of article enhancement runs by outcome",
		},
		[]string{"outcome"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "enhancer_pipeline_duration_seconds",
			Help:    "Duration of complete article enhancement runs in seconds",
			Buckets: []float64{1, 5, 10, 20, 30, 60, 120, 300},
		},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enhancer_model_calls_total",
			Help: "Total number of generative model calls by kind and status",
		},
		[]string{"kind", "status"},
	)

	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enhancer_model_call_duration_seconds",
			Help:    "Duration of generative model calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
		[]string{"kind"},
	)
)

// Outcome labels for PipelineRuns.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid_input"
	OutcomeFailed  = "failed"
)

func ObserveModelCall(kind string, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	ModelCalls.WithLabelValues(kind, status).Inc()
	ModelCallDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func RecordRun(outcome string, d time.Duration) {
	PipelineRuns.WithLabelValues(outcome).Inc()
	if outcome != OutcomeInvalid {
		PipelineDuration.Observe(d.Seconds())
	}
}
