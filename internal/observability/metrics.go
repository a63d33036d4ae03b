// Package observability holds the Prometheus instrumentation for tool
// execution.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts tool invocations and tracks their duration.
type Metrics struct {
	ToolInvocations *prometheus.CounterVec   // labels: tool, status
	ToolDuration    *prometheus.HistogramVec // labels: tool
	HaltResponses   prometheus.Counter
}

// NewMetrics creates all metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in production; tests use a fresh
// prometheus.NewRegistry to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ToolInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tripkit",
			Name:      "tool_invocations_total",
			Help:      "Total tool executions by tool name and result status.",
		}, []string{"tool", "status"}),
		ToolDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tripkit",
			Name:      "tool_duration_seconds",
			Help:      "Tool execution duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		HaltResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tripkit",
			Name:      "halt_responses_total",
			Help:      "Total tool results flagged to bypass model synthesis.",
		}),
	}

	reg.MustRegister(m.ToolInvocations, m.ToolDuration, m.HaltResponses)
	return m
}

// ObserveTool records one tool execution. Nil-safe so callers can run
// without metrics wired.
func (m *Metrics) ObserveTool(tool, status string, halt bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ToolInvocations.WithLabelValues(tool, status).Inc()
	m.ToolDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
	if halt {
		m.HaltResponses.Inc()
	}
}
