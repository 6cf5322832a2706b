package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by path and status class.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "agent_requests_total",
		Help: "Number of HTTP requests processed",
	}, []string{"path", "status"})

	// StageDuration tracks how long each pipeline stage takes.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "agent_stage_duration_seconds",
		Help:    "Duration of pipeline stages (generate, execute, narrate)",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	// RejectedQueries counts SQL rejected by the guard before execution.
	RejectedQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "agent_rejected_queries_total",
		Help: "Number of generated queries rejected by the keyword guard",
	})
)

// ObserveStage records one stage duration.
func ObserveStage(stage string, start time.Time) {
	StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}
