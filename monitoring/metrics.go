package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backendOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventdesk_backend_operations_total",
			Help: "Backend table operations by table, operation and status.",
		},
		[]string{"table", "operation", "status"},
	)

	backendOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventdesk_backend_operation_duration_seconds",
			Help:    "Latency of backend table operations.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"table", "operation"},
	)

	notificationsPushed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventdesk_notifications_pushed_total",
			Help: "Notifications published to the realtime channel.",
		},
	)
)

// Monitor records operational metrics. A nil Monitor is valid and
// records nothing, so callers never have to branch on metrics being
// enabled.
type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) TrackOperation(table, operation, status string) {
	if m == nil {
		return
	}
	backendOperations.WithLabelValues(table, operation, status).Inc()
}

func (m *Monitor) ObserveOperation(table, operation string, started time.Time) {
	if m == nil {
		return
	}
	backendOperationDuration.WithLabelValues(table, operation).Observe(time.Since(started).Seconds())
}

func (m *Monitor) TrackNotificationPush() {
	if m == nil {
		return
	}
	notificationsPushed.Inc()
}
