// Package main builds the supervised training table from historical results.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/database"
	"github.com/yourusername/matchcast/internal/datasource"
	applogger "github.com/yourusername/matchcast/internal/logger"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/repository"
	"github.com/yourusername/matchcast/internal/service"
)

var (
	configFile string
	outputFile string
	statsFile  string
)

var rootCmd = &cobra.Command{
	Use:   "prepare-data",
	Short: "Fetch historical results and build the training table",
	Long: `Fetches completed fixtures through the source fallback chain (local CSV
directory, then download, then the embedded results), validates them,
aggregates per-team season statistics and writes one feature row per match.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVarP(&outputFile, "out", "o", "data/training.csv", "Output path for the training table CSV")
	rootCmd.Flags().StringVarP(&statsFile, "stats-out", "s", "data/team_stats.json", "Output path for the aggregated team statistics JSON")
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var (
		matchWriter service.MatchWriter
		statsWriter service.StatsWriter
	)
	if cfg.Database.Enabled {
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		repos, err := repository.NewRepositories(db)
		if err != nil {
			return fmt.Errorf("failed to create repositories: %w", err)
		}
		matchWriter = repos.Match
		statsWriter = repos.TeamStats
	}

	chain := datasource.NewChain(datasource.Options{
		DataDir:         cfg.Data.Dir,
		BaseURL:         cfg.Data.BaseURL,
		Seasons:         cfg.Data.Seasons,
		HTTP:            datasource.DefaultHTTPClientConfig(),
		DisableDownload: cfg.Data.DisableDownload,
	}, appLog)

	ingestion := service.NewIngestionService(
		chain,
		service.NewMatchValidator(appLog),
		service.NewAggregator(),
		matchWriter,
		statsWriter,
		appLog,
	)

	result, err := ingestion.Run(ctx)
	if err != nil {
		return fmt.Errorf("data preparation failed: %w", err)
	}

	if err := writeTrainingTable(result); err != nil {
		return err
	}
	if err := writeTeamStats(result.Stats); err != nil {
		return err
	}

	printRanking(result.Stats)

	appLog.WithFields(logrus.Fields{
		"matches": len(result.Matches),
		"teams":   result.Snapshot.Len(),
		"rows":    result.Training.Len(),
		"output":  outputFile,
		"stats":   statsFile,
	}).Info("Data preparation complete")

	return nil
}

func writeTrainingTable(result *service.IngestionResult) error {
	if err := ensureDir(outputFile); err != nil {
		return err
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := result.Training.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write training table: %w", err)
	}
	return nil
}

func writeTeamStats(stats map[string]*models.TeamStats) error {
	if err := ensureDir(statsFile); err != nil {
		return err
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode team stats: %w", err)
	}
	if err := os.WriteFile(statsFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write team stats: %w", err)
	}
	return nil
}

func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}

// printRanking lists teams by points per game, strongest first.
func printRanking(stats map[string]*models.TeamStats) {
	ranked := make([]*models.TeamStats, 0, len(stats))
	for _, s := range stats {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].PointsPerGame != ranked[j].PointsPerGame {
			return ranked[i].PointsPerGame > ranked[j].PointsPerGame
		}
		return ranked[i].TeamID < ranked[j].TeamID
	})

	fmt.Println("Team ranking by points per game:")
	for i, s := range ranked {
		fmt.Printf("%2d. %-20s ppg=%.2f win_rate=%.3f gd=%+.2f (%d matches)\n",
			i+1, s.TeamID, s.PointsPerGame, s.WinRate, s.GoalDiffAvg, s.MatchesPlayed)
	}
}
