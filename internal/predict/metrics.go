package predict

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal tracks completed predictions by backend and outcome.
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchcast_predictions_total",
			Help: "Total number of fixture predictions made",
		},
		[]string{"backend", "outcome", "cache_hit"},
	)

	// PredictionLatency tracks prediction latency by backend.
	PredictionLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matchcast_prediction_latency_seconds",
			Help:    "Fixture prediction latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend"},
	)

	// PredictionErrorsTotal tracks rejected or failed predictions by kind.
	PredictionErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchcast_prediction_errors_total",
			Help: "Total number of prediction errors",
		},
		[]string{"kind"}, // unknown_team, identical_teams, missing_stat, degenerate_score, internal
	)

	// CacheHitRatio tracks the prediction cache hit ratio.
	CacheHitRatio = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matchcast_prediction_cache_hit_ratio",
			Help: "Prediction result cache hit ratio",
		},
	)
)
