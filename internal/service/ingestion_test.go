package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/models"
)

type fixedSource struct {
	matches []models.Match
	err     error
}

func (s *fixedSource) FetchMatches(ctx context.Context) ([]models.Match, error) {
	return s.matches, s.err
}

func (s *fixedSource) Name() string { return "fixed" }

type recordingMatchWriter struct {
	matches []models.Match
	err     error
}

func (w *recordingMatchWriter) CreateBatch(ctx context.Context, matches []models.Match) error {
	w.matches = append(w.matches, matches...)
	return w.err
}

type recordingStatsWriter struct {
	stats map[string]*models.TeamStats
}

func (w *recordingStatsWriter) UpsertAll(ctx context.Context, stats map[string]*models.TeamStats) error {
	w.stats = stats
	return nil
}

func ingestionFixtures() []models.Match {
	return []models.Match{
		fixture("Arsenal", "Chelsea", 3, 1, "H", 15, 8, 7, 3),
		fixture("Chelsea", "Wolves", 2, 2, "D", 12, 10, 5, 4),
		fixture("Wolves", "Arsenal", 0, 2, "A", 7, 16, 2, 8),
		fixture("", "Chelsea", 1, 0, "H", 10, 5, 4, 2), // rejected
	}
}

func newIngestion(src *fixedSource, mw MatchWriter, sw StatsWriter) *IngestionService {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewIngestionService(src, NewMatchValidator(logger), NewAggregator(), mw, sw, logger)
}

func TestIngestionRun(t *testing.T) {
	svc := newIngestion(&fixedSource{matches: ingestionFixtures()}, nil, nil)

	result, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Matches, 3)
	assert.Len(t, result.Stats, 3)
	assert.Equal(t, 3, result.Snapshot.Len())
	assert.Equal(t, 3, result.Training.Len())
	assert.Equal(t, []string{"Arsenal", "Chelsea", "Wolves"}, result.Snapshot.Teams())

	m := svc.Metrics()
	assert.Equal(t, 4, m.TotalMatches)
	assert.Equal(t, 3, m.ValidMatches)
	assert.Equal(t, 1, m.RejectedMatches)
	assert.Equal(t, 0, m.Errors)

	// Labels follow the match results in order.
	assert.Equal(t, []int{ml.LabelHomeWin, ml.LabelDraw, ml.LabelAwayWin}, result.Training.Labels)
}

func TestIngestionPersists(t *testing.T) {
	mw := &recordingMatchWriter{}
	sw := &recordingStatsWriter{}
	svc := newIngestion(&fixedSource{matches: ingestionFixtures()}, mw, sw)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, mw.matches, 3)
	assert.Len(t, sw.stats, 3)
	assert.Equal(t, 3, svc.Metrics().PersistedMatches)
}

func TestIngestionPersistFailureNonFatal(t *testing.T) {
	mw := &recordingMatchWriter{err: errors.New("db down")}
	svc := newIngestion(&fixedSource{matches: ingestionFixtures()}, mw, nil)

	result, err := svc.Run(context.Background())
	require.NoError(t, err, "in-memory result survives a persistence failure")
	assert.Equal(t, 3, result.Snapshot.Len())
	assert.Equal(t, 1, svc.Metrics().Errors)
}

func TestIngestionSourceFailure(t *testing.T) {
	svc := newIngestion(&fixedSource{err: errors.New("all tiers down")}, nil, nil)

	_, err := svc.Run(context.Background())
	require.Error(t, err)
}

func TestIngestionAllInvalid(t *testing.T) {
	svc := newIngestion(&fixedSource{matches: []models.Match{
		fixture("Arsenal", "Arsenal", 1, 1, "D", 5, 5, 2, 2),
	}}, nil, nil)

	_, err := svc.Run(context.Background())
	require.Error(t, err)
}

func TestBuildTrainingSetSkipsUnknownTeams(t *testing.T) {
	matches := []models.Match{
		fixture("Arsenal", "Chelsea", 2, 0, "H", 14, 8, 6, 3),
		fixture("Arsenal", "Ghost FC", 1, 0, "H", 10, 5, 4, 2),
	}
	stats := NewAggregator().Aggregate(matches[:1])

	ds, err := BuildTrainingSet(matches, stats)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}
