package datasource

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/models"
)

// DefaultBaseURL is the football-data.co.uk download root.
const DefaultBaseURL = "https://www.football-data.co.uk"

// DefaultSeasons lists the Premier League seasons fetched by default.
var DefaultSeasons = []string{"2021-22", "2022-23", "2023-24", "2024-25"}

// FootballDataSource downloads per-season E0 (Premier League) CSVs.
type FootballDataSource struct {
	client  *RateLimitedHTTPClient
	baseURL string
	seasons []string
	logger  *logrus.Logger
}

// NewFootballDataSource creates the download tier. An empty baseURL or
// seasons list falls back to the defaults.
func NewFootballDataSource(client *RateLimitedHTTPClient, baseURL string, seasons []string, logger *logrus.Logger) *FootballDataSource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if len(seasons) == 0 {
		seasons = DefaultSeasons
	}
	return &FootballDataSource{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		seasons: seasons,
		logger:  logger,
	}
}

// Name returns the source identifier.
func (s *FootballDataSource) Name() string {
	return "football-data.co.uk"
}

// SeasonURL returns the download URL for a season label like "2023-24".
func (s *FootballDataSource) SeasonURL(season string) string {
	return fmt.Sprintf("%s/mmz4281/%s/E0.csv", s.baseURL, seasonCode(season))
}

// FetchMatches downloads every configured season. A failed season is logged
// and skipped; the fetch only fails when no season yields matches.
func (s *FootballDataSource) FetchMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	var lastErr error

	for _, season := range s.seasons {
		seasonMatches, err := s.fetchSeason(ctx, season)
		if err != nil {
			lastErr = err
			s.logger.WithFields(logrus.Fields{
				"season": season,
				"error":  err,
			}).Warn("Season download failed")
			continue
		}

		s.logger.WithFields(logrus.Fields{
			"season":  season,
			"matches": len(seasonMatches),
		}).Info("Season downloaded")
		matches = append(matches, seasonMatches...)
	}

	if len(matches) == 0 {
		return nil, &SourceError{Source: s.Name(), Message: "no season could be downloaded", Err: lastErr}
	}
	return matches, nil
}

func (s *FootballDataSource) fetchSeason(ctx context.Context, season string) ([]models.Match, error) {
	resp, err := s.client.Get(ctx, s.SeasonURL(season))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return ParseMatches(resp.Body, season, s.Name())
}

// seasonCode converts "2023-24" to the provider's "2324" path segment.
func seasonCode(season string) string {
	parts := strings.SplitN(season, "-", 2)
	if len(parts) == 2 && len(parts[0]) == 4 {
		return parts[0][2:] + parts[1]
	}
	return season
}
