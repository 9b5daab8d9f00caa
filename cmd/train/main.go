// Package main trains the learned probability backend from a training table.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/matchcast/internal/config"
	applogger "github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/ml"
)

var (
	configFile string
	inputFile  string
	outputFile string
)

var rootCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit the learned backend and save a model artifact",
	Long: `Reads the training table produced by prepare-data, fits a multinomial
logistic model with a held-out test split and cross-validation, and saves
the weights, scaler and training metadata as a JSON artifact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&inputFile, "in", "i", "data/training.csv", "Training table CSV path")
	rootCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Artifact output path (defaults to the configured artifact path)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := applogger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	trainLog := applogger.NewTrainingLogger(appLog)

	artifactPath := outputFile
	if artifactPath == "" {
		artifactPath = cfg.Model.ArtifactPath
	}
	if artifactPath == "" {
		return fmt.Errorf("no artifact output path configured")
	}

	ds, err := ml.LoadDataset(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load training table: %w", err)
	}
	appLog.WithField("rows", ds.Len()).Info("Training table loaded")

	trainer := ml.NewTrainer(ml.TrainConfig{
		Epochs:       cfg.Training.Epochs,
		LearningRate: cfg.Training.LearningRate,
		TestFraction: cfg.Training.TestFraction,
		CVFolds:      cfg.Training.CVFolds,
		Seed:         cfg.Training.Seed,
	}, appLog)

	start := time.Now()
	model, report, err := trainer.Train(ds)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	trainLog.LogTrainingRun(ml.ModelType, report.TrainSamples, report.TestSamples,
		report.TestAccuracy, report.CVAccuracy, report.CVStd, time.Since(start))

	printReport(report)

	artifact := ml.NewArtifact(model, report)
	if err := artifact.Save(artifactPath); err != nil {
		return fmt.Errorf("failed to save artifact: %w", err)
	}

	appLog.WithFields(logrus.Fields{
		"artifact":      artifactPath,
		"test_accuracy": report.TestAccuracy,
		"cv_accuracy":   report.CVAccuracy,
	}).Info("Model artifact saved")

	return nil
}

func printReport(report *ml.Report) {
	fmt.Printf("Train samples:     %d\n", report.TrainSamples)
	fmt.Printf("Test samples:      %d\n", report.TestSamples)
	fmt.Printf("Holdout accuracy:  %.3f\n", report.TestAccuracy)
	fmt.Printf("CV accuracy:       %.3f (+/- %.3f)\n", report.CVAccuracy, report.CVStd)

	classes := ml.ClassNames
	fmt.Println("Confusion matrix (rows = actual, columns = predicted):")
	fmt.Printf("%-10s", "")
	for _, c := range classes {
		fmt.Printf("%10s", c)
	}
	fmt.Println()
	for i, row := range report.Confusion {
		fmt.Printf("%-10s", classes[i])
		for _, n := range row {
			fmt.Printf("%10d", n)
		}
		fmt.Println()
	}
}
