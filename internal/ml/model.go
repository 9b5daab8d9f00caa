package ml

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/yourusername/matchcast/internal/feature"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/predict"
)

// NumClasses is the number of outcome classes, in label order
// home win (0), draw (1), away win (2).
const NumClasses = 3

// ModelType identifies the decision function stored in an artifact.
const ModelType = "multinomial_logistic"

// Model is the trained probability backend. Weights are laid out per class
// with the bias at index 0 followed by one weight per feature column, so a
// class score is w[0] + dot(w[1:], scaled_features).
type Model struct {
	ID      uuid.UUID   `json:"model_id"`
	Weights [][]float64 `json:"weights"`
	Scaler  *Scaler     `json:"scaler"`
}

// Validate checks weight and scaler dimensions against the feature layout.
func (m *Model) Validate() error {
	if len(m.Weights) != NumClasses {
		return fmt.Errorf("expected %d weight rows, got %d", NumClasses, len(m.Weights))
	}
	for c, w := range m.Weights {
		if len(w) != feature.Dim+1 {
			return fmt.Errorf("class %d: expected %d weights (bias + features), got %d", c, feature.Dim+1, len(w))
		}
	}
	if m.Scaler == nil {
		return fmt.Errorf("model has no scaler")
	}
	if m.Scaler.Dim() != feature.Dim {
		return fmt.Errorf("scaler fit on %d features, expected %d", m.Scaler.Dim(), feature.Dim)
	}
	return nil
}

// Name returns the backend identifier.
func (m *Model) Name() string {
	return "learned"
}

// FeatureSet reports that the model requires the full training layout,
// shot metrics included.
func (m *Model) FeatureSet() feature.Set {
	return feature.SetFull
}

// Estimate standardizes the vector and applies the linear decision function,
// converting class scores to probabilities via softmax. The output sums to
// ~1 up to floating-point drift; predict.Finalize corrects the remainder.
func (m *Model) Estimate(vec feature.Vector) (predict.RawScores, error) {
	if vec.Set() != feature.SetFull {
		return predict.RawScores{}, fmt.Errorf("%w: learned backend needs the full feature set", models.ErrMissingStat)
	}

	probs := m.probabilities(m.Scaler.Transform(vec.Values()))
	return predict.RawScores{Home: probs[0], Draw: probs[1], Away: probs[2]}, nil
}

// probabilities computes softmax class probabilities for a standardized row.
func (m *Model) probabilities(scaled []float64) [NumClasses]float64 {
	var scores [NumClasses]float64
	for c := 0; c < NumClasses; c++ {
		scores[c] = m.Weights[c][0]
		for j, v := range scaled {
			scores[c] += m.Weights[c][j+1] * v
		}
	}
	return softmax(scores)
}

// softmax converts scores to probabilities, shifting by the max score for
// numerical stability.
func softmax(scores [NumClasses]float64) [NumClasses]float64 {
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	var out [NumClasses]float64
	var sum float64
	for c, s := range scores {
		out[c] = math.Exp(s - max)
		sum += out[c]
	}
	for c := range out {
		out[c] /= sum
	}
	return out
}
