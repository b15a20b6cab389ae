package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitaplan_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "vitaplan_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	PollTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vitaplan_poller_ticks_total",
			Help: "Total reminder poll ticks",
		},
	)

	PollFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vitaplan_poller_fetch_failures_total",
			Help: "Poll ticks that failed to fetch due reminders",
		},
	)

	AlertsEmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "vitaplan_poller_alerts_total",
			Help: "Reminder alerts surfaced to the user",
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, PollTicks, PollFailures, AlertsEmitted)
}
