// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "convoflow"

var (
	IngestResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingest_results_total",
			Help:      "Webhook deliveries by acknowledgement token.",
		},
		[]string{"status"},
	)

	QueueOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_outcomes_total",
			Help:      "Queue record processing outcomes.",
		},
		[]string{"event_kind", "outcome"},
	)

	QueueDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "queue_processing_duration_seconds",
			Help:      "Duration of a single queue record handler attempt.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"event_kind"},
	)

	Decisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Automated response decisions by reason.",
		},
		[]string{"reason"},
	)

	OutboundSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbound_sends_total",
			Help:      "Messages sent to the chat gateway.",
		},
		[]string{"result"}, // sent, failed, cap_reached
	)

	ReplyFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reply_failures_total",
			Help:      "Buffered turns whose reply failed.",
		},
		[]string{"result"}, // requeued, abandoned
	)

	WorkflowSteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_steps_total",
			Help:      "Workflow execution passes by final status.",
		},
		[]string{"status"},
	)

	OutboxRelays = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_relays_total",
			Help:      "Outbox events relayed to the broker.",
		},
		[]string{"result"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)
