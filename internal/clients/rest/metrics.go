package rest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramRequestTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expense_tracker",
		Subsystem: "http_client",
		Name:      "histogram_request_time_seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	},
	[]string{"service", "status"},
)

func observeRequest(service, status string, elapsed time.Duration) {
	histogramRequestTime.
		WithLabelValues(service, status).
		Observe(elapsed.Seconds())
}
