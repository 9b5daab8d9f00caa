// Package predict turns fixture feature vectors into outcome probabilities.
package predict

import (
	"github.com/yourusername/matchcast/internal/feature"
)

// RawScores holds a backend's unnormalized class probabilities, in class
// order home / draw / away. Scores are only meaningful after Finalize.
type RawScores struct {
	Home float64
	Draw float64
	Away float64
}

// Total returns the sum of the three raw scores.
func (r RawScores) Total() float64 {
	return r.Home + r.Draw + r.Away
}

// Estimator is the probability-estimation capability. Two conforming
// implementations exist: the closed-form heuristic in this package and the
// trained model in internal/ml. Both feed the same normalization and decision
// logic, so they are interchangeable behind this interface.
type Estimator interface {
	// Name identifies the backend in results, logs and metrics.
	Name() string

	// FeatureSet reports which feature families the backend requires.
	FeatureSet() feature.Set

	// Estimate maps a feature vector to raw class scores. Implementations
	// must be pure: identical vectors yield identical scores.
	Estimate(vec feature.Vector) (RawScores, error)
}
