// Package datasource loads historical match results from football-data.co.uk
// style CSVs, whether downloaded, read from a local directory, or embedded.
package datasource

import (
	"context"
	"errors"

	"github.com/yourusername/matchcast/internal/models"
)

// MatchSource fetches completed fixtures from one provider tier.
type MatchSource interface {
	// FetchMatches retrieves all available historical matches.
	FetchMatches(ctx context.Context) ([]models.Match, error)

	// Name returns the source identifier used in logs and match records.
	Name() string
}

// ErrNoData indicates a source had nothing usable to return. The fallback
// chain treats it as a signal to try the next tier.
var ErrNoData = errors.New("no match data available")

// SourceError wraps a failure with the name of the source that produced it.
type SourceError struct {
	Source  string
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Source + ": " + e.Message
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
