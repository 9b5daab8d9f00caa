package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/datasource"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/models"
	"github.com/yourusername/matchcast/internal/store"
)

// MatchWriter persists match records. A nil writer disables persistence.
type MatchWriter interface {
	CreateBatch(ctx context.Context, matches []models.Match) error
}

// StatsWriter persists team statistics. A nil writer disables persistence.
type StatsWriter interface {
	UpsertAll(ctx context.Context, stats map[string]*models.TeamStats) error
}

// IngestionResult is the output of one ingestion run: everything the
// prediction and training paths need, derived once.
type IngestionResult struct {
	Matches  []models.Match
	Stats    map[string]*models.TeamStats
	Snapshot *store.Snapshot
	Training *ml.Dataset
}

// IngestionService orchestrates a full data refresh: fetch matches through
// the source fallback chain, validate, aggregate team statistics, build the
// training table and optionally persist to the database.
type IngestionService struct {
	source     datasource.MatchSource
	validator  *MatchValidator
	aggregator *Aggregator
	matchRepo  MatchWriter
	statsRepo  StatsWriter
	metrics    *IngestionMetrics
	logger     *logrus.Logger
}

// NewIngestionService creates an ingestion service. matchRepo and statsRepo
// may be nil when the service runs without a database.
func NewIngestionService(
	source datasource.MatchSource,
	validator *MatchValidator,
	aggregator *Aggregator,
	matchRepo MatchWriter,
	statsRepo StatsWriter,
	logger *logrus.Logger,
) *IngestionService {
	return &IngestionService{
		source:     source,
		validator:  validator,
		aggregator: aggregator,
		matchRepo:  matchRepo,
		statsRepo:  statsRepo,
		metrics:    NewIngestionMetrics(),
		logger:     logger,
	}
}

// Run executes one ingestion pass.
func (s *IngestionService) Run(ctx context.Context) (*IngestionResult, error) {
	s.metrics.Reset()
	start := time.Now()

	matches, err := s.source.FetchMatches(ctx)
	if err != nil {
		s.metrics.RecordError()
		metrics.RecordIngestRun("failure", 0, time.Since(start))
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	s.metrics.RecordFetched(len(matches))

	valid, rejected := s.validator.FilterValid(matches)
	s.metrics.RecordValidated(len(valid), rejected)
	if len(valid) == 0 {
		s.metrics.RecordError()
		metrics.RecordIngestRun("failure", 0, time.Since(start))
		return nil, fmt.Errorf("no valid matches after filtering %d records", len(matches))
	}

	stats := s.aggregator.Aggregate(valid)
	s.metrics.RecordAggregated(len(stats))

	training, err := BuildTrainingSet(valid, stats)
	if err != nil {
		s.metrics.RecordError()
		metrics.RecordIngestRun("failure", 0, time.Since(start))
		return nil, fmt.Errorf("failed to build training set: %w", err)
	}
	s.metrics.RecordTrainingRows(training.Len())

	if err := s.persist(ctx, valid, stats); err != nil {
		// Persistence failure does not invalidate the in-memory result.
		s.metrics.RecordError()
		s.logger.WithError(err).Error("Failed to persist ingestion output")
	}

	elapsed := time.Since(start)
	s.metrics.RecordDuration(elapsed)
	metrics.RecordIngestRun("success", len(valid), elapsed)
	s.logger.WithFields(logrus.Fields{
		"matches":  len(valid),
		"rejected": rejected,
		"teams":    len(stats),
		"duration": elapsed,
	}).Info("Ingestion complete")

	return &IngestionResult{
		Matches:  valid,
		Stats:    stats,
		Snapshot: store.NewSnapshot(stats),
		Training: training,
	}, nil
}

func (s *IngestionService) persist(ctx context.Context, matches []models.Match, stats map[string]*models.TeamStats) error {
	if s.matchRepo != nil {
		if err := s.matchRepo.CreateBatch(ctx, matches); err != nil {
			return fmt.Errorf("persist matches: %w", err)
		}
		s.metrics.RecordPersisted(len(matches))
	}
	if s.statsRepo != nil {
		if err := s.statsRepo.UpsertAll(ctx, stats); err != nil {
			return fmt.Errorf("persist team stats: %w", err)
		}
	}
	return nil
}

// Metrics returns the tracker for the most recent run.
func (s *IngestionService) Metrics() *IngestionMetrics {
	return s.metrics
}
