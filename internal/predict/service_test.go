package predict

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/matchcast/internal/models"
)

// fakeLookup is a map-backed StatsLookup that records lookups.
type fakeLookup struct {
	stats   map[string]*models.TeamStats
	lookups []string
}

func (f *fakeLookup) Lookup(teamID string) (*models.TeamStats, bool) {
	f.lookups = append(f.lookups, teamID)
	s, ok := f.stats[teamID]
	return s, ok
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{stats: map[string]*models.TeamStats{
		"Arsenal": arsenal(),
		"Wolves":  wolves(),
	}}
}

func TestServicePredict(t *testing.T) {
	lookup := newFakeLookup()
	svc := NewService(lookup, NewHeuristic(), nil, testLogger())

	result, err := svc.Predict(context.Background(), "Arsenal", "Wolves")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, models.OutcomeHomeWin, result.Outcome)
	assert.Greater(t, result.HomeWinPct, 50.0)
	assert.Equal(t, "heuristic", result.Backend)
	assert.InDelta(t, 100.0, result.HomeWinPct+result.DrawPct+result.AwayWinPct, 1e-9)
}

func TestServiceIdenticalTeamsRejectedBeforeLookup(t *testing.T) {
	lookup := newFakeLookup()
	svc := NewService(lookup, NewHeuristic(), nil, testLogger())

	_, err := svc.Predict(context.Background(), "Arsenal", "Arsenal")
	require.ErrorIs(t, err, models.ErrIdenticalTeams)
	assert.Empty(t, lookup.lookups, "no store lookup may happen before the identity check")
}

func TestServiceUnknownTeam(t *testing.T) {
	lookup := newFakeLookup()
	svc := NewService(lookup, NewHeuristic(), nil, testLogger())

	_, err := svc.Predict(context.Background(), "Arsenal", "Atlantis")
	require.ErrorIs(t, err, models.ErrUnknownTeam)

	_, err = svc.Predict(context.Background(), "Atlantis", "Arsenal")
	require.ErrorIs(t, err, models.ErrUnknownTeam)
}

func TestServiceIdempotence(t *testing.T) {
	lookup := newFakeLookup()
	svc := NewService(lookup, NewHeuristic(), nil, testLogger())

	first, err := svc.Predict(context.Background(), "Arsenal", "Wolves")
	require.NoError(t, err)
	second, err := svc.Predict(context.Background(), "Arsenal", "Wolves")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestServiceCachesResults(t *testing.T) {
	lookup := newFakeLookup()
	cache := NewResultCache(time.Minute, time.Minute, 100)
	svc := NewService(lookup, NewHeuristic(), cache, testLogger())

	first, err := svc.Predict(context.Background(), "Arsenal", "Wolves")
	require.NoError(t, err)

	second, err := svc.Predict(context.Background(), "Arsenal", "Wolves")
	require.NoError(t, err)
	assert.Same(t, first, second, "second call should be served from cache")

	hits, misses, _ := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestServiceCacheClearedResultsRecomputed(t *testing.T) {
	lookup := newFakeLookup()
	cache := NewResultCache(time.Minute, time.Minute, 100)
	svc := NewService(lookup, NewHeuristic(), cache, testLogger())

	first, err := svc.Predict(context.Background(), "Arsenal", "Wolves")
	require.NoError(t, err)

	cache.Clear()

	second, err := svc.Predict(context.Background(), "Arsenal", "Wolves")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first, second, "recomputed result must be identical")
}

func TestResultCacheKey(t *testing.T) {
	key := CacheKey{HomeTeam: "Arsenal", AwayTeam: "Wolves", Backend: "heuristic"}
	assert.Equal(t, "Arsenal|Wolves|heuristic", key.String())

	reversed := CacheKey{HomeTeam: "Wolves", AwayTeam: "Arsenal", Backend: "heuristic"}
	assert.NotEqual(t, key.String(), reversed.String())
}
