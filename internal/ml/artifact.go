package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/matchcast/internal/feature"
)

// ArtifactMetadata carries training provenance stored alongside the weights.
type ArtifactMetadata struct {
	TrainSamples int       `json:"train_samples"`
	TestSamples  int       `json:"test_samples"`
	TestAccuracy float64   `json:"test_accuracy"`
	CVAccuracy   float64   `json:"cv_accuracy"`
	CVStd        float64   `json:"cv_std"`
	Classes      []string  `json:"classes"`
	TrainedAt    time.Time `json:"trained_at"`
}

// Artifact is the on-disk JSON form of a trained model. The feature column
// list is stored verbatim so a load against a changed feature layout fails
// loudly instead of silently misassigning weights.
type Artifact struct {
	ModelID     uuid.UUID        `json:"model_id"`
	ModelType   string           `json:"model_type"`
	FeatureCols []string         `json:"feature_cols"`
	Scaler      *Scaler          `json:"scaler"`
	Weights     [][]float64      `json:"weights"`
	Metadata    ArtifactMetadata `json:"metadata"`
}

// NewArtifact packages a trained model and its report for persistence.
func NewArtifact(model *Model, report *Report) *Artifact {
	return &Artifact{
		ModelID:     model.ID,
		ModelType:   ModelType,
		FeatureCols: feature.Columns[:],
		Scaler:      model.Scaler,
		Weights:     model.Weights,
		Metadata: ArtifactMetadata{
			TrainSamples: report.TrainSamples,
			TestSamples:  report.TestSamples,
			TestAccuracy: report.TestAccuracy,
			CVAccuracy:   report.CVAccuracy,
			CVStd:        report.CVStd,
			Classes:      ClassNames[:],
			TrainedAt:    report.TrainedAt,
		},
	}
}

// Save writes the artifact as indented JSON.
func (a *Artifact) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	return nil
}

// Model reconstructs and validates the runtime model from the artifact.
func (a *Artifact) Model() (*Model, error) {
	if a.ModelType != ModelType {
		return nil, fmt.Errorf("unsupported model type %q, expected %q", a.ModelType, ModelType)
	}
	if len(a.FeatureCols) != feature.Dim {
		return nil, fmt.Errorf("artifact has %d feature columns, expected %d", len(a.FeatureCols), feature.Dim)
	}
	for i, col := range a.FeatureCols {
		if col != feature.Columns[i] {
			return nil, fmt.Errorf("feature column %d is %q, expected %q", i, col, feature.Columns[i])
		}
	}

	model := &Model{ID: a.ModelID, Weights: a.Weights, Scaler: a.Scaler}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}

// LoadArtifact reads a model artifact from disk without validating it.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	return &artifact, nil
}

// LoadModel reads a model artifact from disk and validates it against the
// current feature layout.
func LoadModel(path string) (*Model, error) {
	artifact, err := LoadArtifact(path)
	if err != nil {
		ModelLoadsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	model, err := artifact.Model()
	if err != nil {
		ModelLoadsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	ModelLoadsTotal.WithLabelValues("success").Inc()
	return model, nil
}
