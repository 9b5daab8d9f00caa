// Package metrics provides Prometheus metrics for the HTTP surface and the
// data refresh path. Prediction and training metrics live next to their
// packages; everything registers on the default registry so a single
// /metrics endpoint exposes the whole picture.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "matchcast"

var (
	// HTTPRequestsTotal counts API requests by route and status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks API latency by route
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// StoreTeams reports the number of teams in the active snapshot
	StoreTeams = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "store_teams",
		Help:      "Number of teams in the active statistics snapshot",
	})

	// SnapshotRefreshesTotal counts snapshot swaps by outcome
	SnapshotRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_refreshes_total",
		Help:      "Total number of statistics snapshot refreshes",
	}, []string{"status"})

	// IngestRunsTotal counts ingestion runs by winning source tier
	IngestRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_runs_total",
		Help:      "Total number of data ingestion runs",
	}, []string{"status"})

	// IngestMatches reports matches loaded by the last ingestion run
	IngestMatches = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ingest_matches",
		Help:      "Matches loaded by the most recent ingestion run",
	})

	// IngestDuration tracks ingestion run duration
	IngestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingest_duration_seconds",
		Help:      "Duration of data ingestion runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
)

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records one served API request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordIngestRun records one ingestion run.
func RecordIngestRun(status string, matches int, duration time.Duration) {
	IngestRunsTotal.WithLabelValues(status).Inc()
	if status == "success" {
		IngestMatches.Set(float64(matches))
		IngestDuration.Observe(duration.Seconds())
	}
}

// RecordSnapshotRefresh records one snapshot swap and the new team count.
func RecordSnapshotRefresh(status string, teams int) {
	SnapshotRefreshesTotal.WithLabelValues(status).Inc()
	if status == "success" {
		StoreTeams.Set(float64(teams))
	}
}
