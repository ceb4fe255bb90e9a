package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowd_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crowd_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	RefreshRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowd_snapshot_refresh_runs_total",
			Help: "Total number of snapshot refresh runs by result",
		},
		[]string{"result"},
	)

	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crowd_snapshot_refresh_duration_seconds",
			Help:    "Duration of snapshot refresh runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	LocationsByLevel = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "crowd_locations_by_level",
			Help: "Number of locations at each crowd level in the latest snapshot",
		},
		[]string{"level"},
	)

	AlertsTriggeredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowd_alerts_triggered_total",
			Help: "Total number of crowd alerts triggered",
		},
		[]string{"condition"},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crowd_stream_clients",
			Help: "Current number of connected websocket clients",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRefresh records one snapshot refresh run.
func RecordRefresh(err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	RefreshRunsTotal.WithLabelValues(result).Inc()
	RefreshDuration.Observe(duration.Seconds())
}

// SetLevelCounts publishes the per-level location counts.
func SetLevelCounts(low, medium, high int) {
	LocationsByLevel.WithLabelValues("low").Set(float64(low))
	LocationsByLevel.WithLabelValues("medium").Set(float64(medium))
	LocationsByLevel.WithLabelValues("high").Set(float64(high))
}
