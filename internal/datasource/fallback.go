package datasource

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/models"
)

// Chain tries sources in priority order and returns the first tier that
// yields matches.
type Chain struct {
	sources []MatchSource
	logger  *logrus.Logger
}

// Options configures the standard three-tier chain.
type Options struct {
	DataDir         string
	BaseURL         string
	Seasons         []string
	HTTP            HTTPClientConfig
	DisableDownload bool
}

// NewChain assembles the standard fallback order: local directory first,
// then download, then the embedded results.
func NewChain(opts Options, logger *logrus.Logger) *Chain {
	var sources []MatchSource

	if opts.DataDir != "" {
		sources = append(sources, NewLocalDirSource(opts.DataDir, logger))
	}
	if !opts.DisableDownload {
		client := NewRateLimitedHTTPClient(opts.HTTP, logger)
		sources = append(sources, NewFootballDataSource(client, opts.BaseURL, opts.Seasons, logger))
	}
	sources = append(sources, NewEmbeddedSource())

	return &Chain{sources: sources, logger: logger}
}

// NewChainFromSources builds a chain with an explicit tier order.
func NewChainFromSources(logger *logrus.Logger, sources ...MatchSource) *Chain {
	return &Chain{sources: sources, logger: logger}
}

// Name returns the source identifier.
func (c *Chain) Name() string {
	return "fallback-chain"
}

// FetchMatches walks the tiers. A tier failure is logged and the next tier
// tried; the chain fails only when every tier does.
func (c *Chain) FetchMatches(ctx context.Context) ([]models.Match, error) {
	var lastErr error

	for _, source := range c.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matches, err := source.FetchMatches(ctx)
		if err != nil {
			lastErr = err
			c.logger.WithFields(logrus.Fields{
				"source": source.Name(),
				"error":  err,
			}).Warn("Data source unavailable, trying next tier")
			continue
		}

		c.logger.WithFields(logrus.Fields{
			"source":  source.Name(),
			"matches": len(matches),
		}).Info("Match data loaded")
		return matches, nil
	}

	return nil, &SourceError{Source: c.Name(), Message: "all data sources failed", Err: lastErr}
}
