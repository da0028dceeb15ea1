// Package observability provides prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oneiro_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// AICallDuration records latency of AI collaborator calls by operation and outcome.
	AICallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "oneiro_ai_call_duration_seconds",
		Help:    "AI collaborator call latency in seconds",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
	}, []string{"operation", "outcome"})

	// CreditsCharged counts credits deducted for confirmed AI operations.
	CreditsCharged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oneiro_credits_charged_total",
		Help: "Total credits charged for confirmed AI operations",
	})
)
