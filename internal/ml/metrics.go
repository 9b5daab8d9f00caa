package ml

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TrainingJobsTotal tracks training runs by outcome
	TrainingJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchcast_training_jobs_total",
			Help: "Total number of model training runs",
		},
		[]string{"model_type", "status"}, // success, failure
	)

	// ModelTestAccuracy reports held-out accuracy of the active model
	ModelTestAccuracy = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "matchcast_model_test_accuracy",
			Help: "Test set accuracy of the most recently trained model",
		},
	)

	// ModelLoadsTotal tracks artifact loads by outcome
	ModelLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchcast_model_loads_total",
			Help: "Total number of model artifact load attempts",
		},
		[]string{"status"},
	)
)
