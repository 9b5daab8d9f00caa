package predict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/feature"
	"github.com/yourusername/matchcast/internal/models"
)

// StatsLookup resolves a team identifier to its season statistics. The store
// snapshot behind it is read-only, so lookups are safe from any goroutine.
type StatsLookup interface {
	Lookup(teamID string) (*models.TeamStats, bool)
}

// Service runs the full prediction pipeline for a fixture: lookup, feature
// construction, backend estimation, normalization and decision. It holds no
// per-request state; concurrent calls need no locking.
type Service struct {
	stats     StatsLookup
	estimator Estimator
	cache     *ResultCache
	logger    *logrus.Logger
}

// NewService creates a prediction service. cache may be nil to disable
// result caching.
func NewService(stats StatsLookup, estimator Estimator, cache *ResultCache, logger *logrus.Logger) *Service {
	return &Service{
		stats:     stats,
		estimator: estimator,
		cache:     cache,
		logger:    logger,
	}
}

// Backend returns the name of the configured estimator.
func (s *Service) Backend() string {
	return s.estimator.Name()
}

// Predict forecasts the outcome of a fixture between two named teams.
// Identical identifiers are rejected before any lookup; unknown teams are
// never silently treated as zero-stat defaults. Errors are deterministic
// functions of the inputs and must not be retried.
func (s *Service) Predict(ctx context.Context, homeID, awayID string) (*models.PredictionResult, error) {
	_ = ctx

	if homeID == awayID {
		PredictionErrorsTotal.WithLabelValues("identical_teams").Inc()
		return nil, fmt.Errorf("%w: %q", models.ErrIdenticalTeams, homeID)
	}

	home, ok := s.stats.Lookup(homeID)
	if !ok {
		PredictionErrorsTotal.WithLabelValues("unknown_team").Inc()
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownTeam, homeID)
	}
	away, ok := s.stats.Lookup(awayID)
	if !ok {
		PredictionErrorsTotal.WithLabelValues("unknown_team").Inc()
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownTeam, awayID)
	}

	key := CacheKey{HomeTeam: homeID, AwayTeam: awayID, Backend: s.estimator.Name()}
	if s.cache != nil {
		if cached := s.cache.Get(key); cached != nil {
			PredictionsTotal.WithLabelValues(cached.Backend, string(cached.Outcome), "true").Inc()
			return cached, nil
		}
	}

	start := time.Now()
	result, err := s.predict(home, away)
	PredictionLatency.WithLabelValues(s.estimator.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		PredictionErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		s.logger.WithError(err).WithFields(logrus.Fields{
			"home_team": homeID,
			"away_team": awayID,
			"backend":   s.estimator.Name(),
		}).Warn("Prediction failed")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	PredictionsTotal.WithLabelValues(result.Backend, string(result.Outcome), "false").Inc()
	s.logger.WithFields(logrus.Fields{
		"home_team":  homeID,
		"away_team":  awayID,
		"backend":    result.Backend,
		"outcome":    result.Outcome,
		"confidence": result.Confidence,
	}).Debug("Prediction completed")

	return result, nil
}

func (s *Service) predict(home, away *models.TeamStats) (*models.PredictionResult, error) {
	vec, err := feature.Build(home, away, s.estimator.FeatureSet())
	if err != nil {
		return nil, err
	}

	raw, err := s.estimator.Estimate(vec)
	if err != nil {
		return nil, err
	}

	result, err := Finalize(raw)
	if err != nil {
		return nil, err
	}

	result.Backend = s.estimator.Name()
	return result, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrMissingStat):
		return "missing_stat"
	case errors.Is(err, models.ErrDegenerateScore):
		return "degenerate_score"
	default:
		return "internal"
	}
}
