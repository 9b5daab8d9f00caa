package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevels(t *testing.T) {
	logger := NewLogger("debug", "development")
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", logger.GetLevel())
	}

	logger = NewLogger("bogus", "development")
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("invalid level should fall back to info, got %v", logger.GetLevel())
	}
}

func TestNewLoggerProductionJSON(t *testing.T) {
	logger := NewLogger("info", "production")

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.WithField("team", "Arsenal").Info("loaded")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("production output should be JSON: %v (%s)", err, buf.String())
	}
	if entry["team"] != "Arsenal" {
		t.Errorf("missing structured field: %v", entry)
	}
}

func TestTrainingLoggerFields(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	tl := NewTrainingLogger(base)
	tl.LogTrainingRun("multinomial_logistic", 120, 30, 0.95, 0.93, 0.02, 3*time.Second)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["component"] != "training" {
		t.Errorf("expected component=training, got %v", entry["component"])
	}
	if entry["model_type"] != "multinomial_logistic" {
		t.Errorf("expected model_type field, got %v", entry)
	}
	if entry["test_accuracy"] != 0.95 {
		t.Errorf("expected test_accuracy 0.95, got %v", entry["test_accuracy"])
	}
}
