// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatTurnsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_completed_total",
			Help: "Total number of chat turns completed by intent",
		},
		[]string{"intent"},
	)

	ChatTurnsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_turns_failed_total",
			Help: "Total number of chat turns that ended in an error reply",
		},
		[]string{"intent", "error_code"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_calls_total",
			Help: "Total number of chat completion calls by outcome",
		},
		[]string{"deployment", "status"},
	)

	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "model_call_duration_seconds",
			Help: "Duration of chat completion calls in seconds",
		},
		[]string{"deployment"},
	)

	SessionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "chat_sessions_active",
			Help: "Number of live in-memory sessions",
		},
		[]string{"store"},
	)
)
