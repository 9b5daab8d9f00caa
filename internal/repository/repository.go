// Package repository provides PostgreSQL persistence for matches and team
// statistics.
package repository

import (
	"fmt"

	"github.com/yourusername/matchcast/internal/database"
)

// Repositories holds all repository implementations.
type Repositories struct {
	Match     MatchRepository
	TeamStats TeamStatsRepository
}

// NewRepositories creates and returns all repository implementations.
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Match:     NewPostgresMatchRepository(db),
		TeamStats: NewPostgresTeamStatsRepository(db),
	}, nil
}
