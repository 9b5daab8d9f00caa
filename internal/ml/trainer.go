package ml

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/feature"
)

// TrainConfig controls the training run. The seed makes splits and weight
// updates reproducible.
type TrainConfig struct {
	Epochs       int
	LearningRate float64
	TestFraction float64
	CVFolds      int
	Seed         int64
}

// DefaultTrainConfig returns the settings used for released artifacts.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Epochs:       400,
		LearningRate: 0.15,
		TestFraction: 0.2,
		CVFolds:      5,
		Seed:         42,
	}
}

// Report summarizes a training run.
type Report struct {
	TrainSamples int
	TestSamples  int
	TestAccuracy float64
	CVAccuracy   float64
	CVStd        float64
	Confusion    [NumClasses][NumClasses]int
	TrainedAt    time.Time
}

// Trainer fits the learned backend from a supervised dataset.
type Trainer struct {
	cfg    TrainConfig
	logger *logrus.Logger
}

// NewTrainer creates a trainer.
func NewTrainer(cfg TrainConfig, logger *logrus.Logger) *Trainer {
	if cfg.Epochs <= 0 {
		cfg.Epochs = 400
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = 0.15
	}
	if cfg.TestFraction <= 0 || cfg.TestFraction >= 1 {
		cfg.TestFraction = 0.2
	}
	if cfg.CVFolds < 2 {
		cfg.CVFolds = 5
	}
	return &Trainer{cfg: cfg, logger: logger}
}

// Train fits scaler and weights on a held-out split and reports test
// accuracy, cross-validation accuracy and the confusion matrix. The scaler
// is fit on the training split only so no test information leaks in.
func (t *Trainer) Train(ds *Dataset) (*Model, *Report, error) {
	minSamples := t.cfg.CVFolds * NumClasses
	if ds.Len() < minSamples {
		return nil, nil, fmt.Errorf("dataset too small: %d samples, need at least %d", ds.Len(), minSamples)
	}

	rng := rand.New(rand.NewSource(t.cfg.Seed))
	trainIdx, testIdx := split(ds.Len(), t.cfg.TestFraction, rng)
	trainSet := ds.Subset(trainIdx)
	testSet := ds.Subset(testIdx)

	t.logger.WithFields(logrus.Fields{
		"train_samples": trainSet.Len(),
		"test_samples":  testSet.Len(),
		"features":      feature.Dim,
	}).Info("Training multinomial logistic model")

	cvMean, cvStd := t.crossValidate(trainSet, rng)

	scaler, err := FitScaler(trainSet.Rows)
	if err != nil {
		return nil, nil, err
	}

	weights := t.fitWeights(scaler.TransformAll(trainSet.Rows), trainSet.Labels)
	model := &Model{ID: uuid.New(), Weights: weights, Scaler: scaler}
	if err := model.Validate(); err != nil {
		return nil, nil, fmt.Errorf("trained model failed validation: %w", err)
	}

	report := &Report{
		TrainSamples: trainSet.Len(),
		TestSamples:  testSet.Len(),
		CVAccuracy:   cvMean,
		CVStd:        cvStd,
		TrainedAt:    time.Now().UTC(),
	}
	report.TestAccuracy, report.Confusion = evaluate(model, testSet)

	TrainingJobsTotal.WithLabelValues(ModelType, "success").Inc()
	ModelTestAccuracy.Set(report.TestAccuracy)

	t.logger.WithFields(logrus.Fields{
		"test_accuracy": report.TestAccuracy,
		"cv_accuracy":   report.CVAccuracy,
		"cv_std":        report.CVStd,
	}).Info("Training complete")

	return model, report, nil
}

// fitWeights runs gradient descent on the softmax cross-entropy loss.
// The gradient per sample and class is (p_c - 1{y=c}) * x.
func (t *Trainer) fitWeights(scaled [][]float64, labels []int) [][]float64 {
	weights := make([][]float64, NumClasses)
	for c := range weights {
		weights[c] = make([]float64, feature.Dim+1)
	}
	model := &Model{Weights: weights}

	n := float64(len(scaled))
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		for i, row := range scaled {
			probs := model.probabilities(row)
			for c := 0; c < NumClasses; c++ {
				grad := probs[c]
				if labels[i] == c {
					grad -= 1
				}
				step := t.cfg.LearningRate * grad / n
				weights[c][0] -= step
				for j, v := range row {
					weights[c][j+1] -= step * v
				}
			}
		}
	}

	return weights
}

// crossValidate runs k-fold cross-validation on the training split and
// returns mean and standard deviation of fold accuracy.
func (t *Trainer) crossValidate(ds *Dataset, rng *rand.Rand) (mean, std float64) {
	indices := rng.Perm(ds.Len())
	folds := t.cfg.CVFolds

	accuracies := make([]float64, 0, folds)
	for f := 0; f < folds; f++ {
		var holdIdx, fitIdx []int
		for i, idx := range indices {
			if i%folds == f {
				holdIdx = append(holdIdx, idx)
			} else {
				fitIdx = append(fitIdx, idx)
			}
		}
		if len(holdIdx) == 0 || len(fitIdx) == 0 {
			continue
		}

		fitSet := ds.Subset(fitIdx)
		scaler, err := FitScaler(fitSet.Rows)
		if err != nil {
			continue
		}
		model := &Model{
			Weights: t.fitWeights(scaler.TransformAll(fitSet.Rows), fitSet.Labels),
			Scaler:  scaler,
		}
		acc, _ := evaluate(model, ds.Subset(holdIdx))
		accuracies = append(accuracies, acc)
	}

	return meanStd(accuracies)
}

// evaluate computes accuracy and the confusion matrix (rows actual, columns
// predicted) of a model on a dataset.
func evaluate(model *Model, ds *Dataset) (float64, [NumClasses][NumClasses]int) {
	var confusion [NumClasses][NumClasses]int
	if ds.Len() == 0 {
		return 0, confusion
	}

	correct := 0
	for i, row := range ds.Rows {
		probs := model.probabilities(model.Scaler.Transform(row))
		predicted := 0
		for c := 1; c < NumClasses; c++ {
			if probs[c] > probs[predicted] {
				predicted = c
			}
		}
		confusion[ds.Labels[i]][predicted]++
		if predicted == ds.Labels[i] {
			correct++
		}
	}

	return float64(correct) / float64(ds.Len()), confusion
}

// split partitions sample indices into train and test sets after a seeded
// shuffle.
func split(n int, testFraction float64, rng *rand.Rand) (train, test []int) {
	indices := rng.Perm(n)
	testSize := int(float64(n) * testFraction)
	if testSize < 1 {
		testSize = 1
	}
	return indices[testSize:], indices[:testSize]
}

func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	for _, v := range values {
		d := v - mean
		std += d * d
	}
	std = math.Sqrt(std / float64(len(values)))
	return mean, std
}
