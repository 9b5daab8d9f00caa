package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// TrainingLogger provides dedicated logging for model training runs.
type TrainingLogger struct {
	*logrus.Entry
}

// NewTrainingLogger creates a training logger.
func NewTrainingLogger(baseLogger *logrus.Logger) *TrainingLogger {
	return &TrainingLogger{
		Entry: baseLogger.WithField("component", "training"),
	}
}

// LogTrainingRun logs the outcome of a completed training run.
func (tl *TrainingLogger) LogTrainingRun(modelType string, trainSamples, testSamples int, testAccuracy, cvAccuracy, cvStd float64, duration time.Duration) {
	tl.WithFields(logrus.Fields{
		"model_type":    modelType,
		"train_samples": trainSamples,
		"test_samples":  testSamples,
		"test_accuracy": testAccuracy,
		"cv_accuracy":   cvAccuracy,
		"cv_std":        cvStd,
		"duration":      duration.Seconds(),
	}).Info("Model training completed")
}

// LogModelLoad logs a model artifact load.
func (tl *TrainingLogger) LogModelLoad(modelID, path string, testAccuracy float64) {
	tl.WithFields(logrus.Fields{
		"model_id":      modelID,
		"artifact_path": path,
		"test_accuracy": testAccuracy,
	}).Info("Model artifact loaded")
}

// LogModelLoadError logs a failed model artifact load.
func (tl *TrainingLogger) LogModelLoadError(path string, err error) {
	tl.WithFields(logrus.Fields{
		"artifact_path": path,
		"error":         err,
	}).Error("Model artifact load failed")
}
