// Package main provides the entry point for the prediction API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/matchcast/internal/api"
	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/database"
	"github.com/yourusername/matchcast/internal/datasource"
	applogger "github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/predict"
	"github.com/yourusername/matchcast/internal/repository"
	"github.com/yourusername/matchcast/internal/scheduler"
	"github.com/yourusername/matchcast/internal/service"
	"github.com/yourusername/matchcast/internal/store"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve fixture outcome predictions over HTTP",
	Long:  `Loads historical match data, aggregates team statistics and serves outcome predictions with heuristic and learned backends.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
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

	if err := config.LoadSecretsFromAWS(context.Background(), cfg); err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLog := applogger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"log_level":   cfg.App.LogLevel,
		"version":     Version,
	}).Info("Matchcast server starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional database
	var (
		db    *database.DB
		repos *repository.Repositories
	)
	if cfg.Database.Enabled {
		db, err = database.Initialize(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		repos, err = repository.NewRepositories(db)
		if err != nil {
			return fmt.Errorf("failed to create repositories: %w", err)
		}
		appLog.Info("Database connection established")
	}

	// Data pipeline
	chain := datasource.NewChain(datasource.Options{
		DataDir:         cfg.Data.Dir,
		BaseURL:         cfg.Data.BaseURL,
		Seasons:         cfg.Data.Seasons,
		HTTP:            httpConfig(cfg),
		DisableDownload: cfg.Data.DisableDownload,
	}, appLog)

	var (
		matchWriter service.MatchWriter
		statsWriter service.StatsWriter
	)
	if repos != nil {
		matchWriter = repos.Match
		statsWriter = repos.TeamStats
	}

	ingestion := service.NewIngestionService(
		chain,
		service.NewMatchValidator(appLog),
		service.NewAggregator(),
		matchWriter,
		statsWriter,
		appLog,
	)

	startupCtx, startupCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer startupCancel()

	result, err := ingestion.Run(startupCtx)
	if err != nil {
		return fmt.Errorf("initial data load failed: %w", err)
	}
	st := store.New(result.Snapshot)
	metrics.RecordSnapshotRefresh("success", result.Snapshot.Len())
	appLog.WithField("teams", result.Snapshot.Len()).Info("Team statistics loaded")

	// Backends
	var caches []*predict.ResultCache
	newCache := func() *predict.ResultCache {
		if !cfg.Cache.Enabled {
			return nil
		}
		c := predict.NewResultCache(cfg.Cache.CacheTTL(), cfg.Cache.CleanupInterval(), cfg.Cache.MaxSize)
		caches = append(caches, c)
		return c
	}

	predictors := map[string]*predict.Service{
		"heuristic": predict.NewService(st, predict.NewHeuristic(), newCache(), appLog),
	}

	defaultBackend := cfg.Model.Backend
	model, artifact, err := loadModel(cfg, applogger.NewTrainingLogger(appLog), appLog)
	if err != nil {
		return err
	}
	if model != nil {
		predictors["learned"] = predict.NewService(st, model, newCache(), appLog)
	}
	if defaultBackend == config.BackendAuto {
		if model != nil {
			defaultBackend = config.BackendLearned
		} else {
			defaultBackend = config.BackendHeuristic
		}
	}
	appLog.WithField("backend", defaultBackend).Info("Prediction backends ready")

	// HTTP server
	server := api.NewServer(api.Config{
		ServiceName:         cfg.App.Name,
		Version:             Version,
		Commit:              GitCommit,
		Server:              cfg.Server,
		Metrics:             cfg.Metrics,
		Predictors:          predictors,
		DefaultBackend:      defaultBackend,
		ConfidenceThreshold: cfg.Model.ConfidenceThreshold,
		Store:               st,
		Artifact:            artifact,
		DB:                  pinger(db),
		Logger:              appLog,
	})
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	server.SetReady(true)

	// Periodic refresh
	if cfg.Schedule.Enabled {
		sched := scheduler.NewScheduler(ingestion, st, caches, appLog)
		if err := sched.ScheduleRefresh(cfg.Schedule.RefreshCron); err != nil {
			return fmt.Errorf("failed to schedule refresh: %w", err)
		}
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	server.SetReady(false)
	cancel()
	if err := server.Shutdown(); err != nil {
		appLog.WithError(err).Error("Error during server shutdown")
	}

	appLog.Info("Matchcast server shut down")
	return nil
}

func httpConfig(cfg *config.Config) datasource.HTTPClientConfig {
	hc := datasource.DefaultHTTPClientConfig()
	if cfg.Data.TimeoutSeconds > 0 {
		hc.Timeout = time.Duration(cfg.Data.TimeoutSeconds) * time.Second
	}
	if cfg.Data.MaxRetries > 0 {
		hc.MaxRetries = cfg.Data.MaxRetries
	}
	if cfg.Data.RateLimit > 0 {
		hc.RateLimit = cfg.Data.RateLimit
	}
	if cfg.Data.CircuitBreakerMax > 0 {
		hc.CircuitBreakerMax = cfg.Data.CircuitBreakerMax
	}
	return hc
}

// loadModel loads the learned backend and its artifact metadata when
// configured. A missing artifact is fatal for backend "learned" but
// tolerated for "auto".
func loadModel(cfg *config.Config, trainLog *applogger.TrainingLogger, appLog *logrus.Logger) (*ml.Model, *ml.Artifact, error) {
	if cfg.Model.Backend == config.BackendHeuristic || cfg.Model.ArtifactPath == "" {
		return nil, nil, nil
	}

	model, err := ml.LoadModel(cfg.Model.ArtifactPath)
	if err != nil {
		trainLog.LogModelLoadError(cfg.Model.ArtifactPath, err)
		if cfg.Model.Backend == config.BackendLearned {
			return nil, nil, fmt.Errorf("failed to load model artifact: %w", err)
		}
		appLog.WithError(err).Warn("Model artifact unavailable, falling back to heuristic backend")
		return nil, nil, nil
	}

	artifact, err := ml.LoadArtifact(cfg.Model.ArtifactPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reload artifact metadata: %w", err)
	}

	trainLog.LogModelLoad(model.ID.String(), cfg.Model.ArtifactPath, artifact.Metadata.TestAccuracy)
	return model, artifact, nil
}

func pinger(db *database.DB) api.DatabasePinger {
	if db == nil {
		return nil
	}
	return db
}
