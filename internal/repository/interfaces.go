package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/yourusername/matchcast/internal/models"
)

// MatchRepository persists and queries historical match records.
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	CreateBatch(ctx context.Context, matches []models.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetBySeason(ctx context.Context, season string) ([]*models.Match, error)
	GetByTeam(ctx context.Context, team string) ([]*models.Match, error)
	Count(ctx context.Context) (int, error)
}

// TeamStatsRepository persists and queries aggregated team statistics.
type TeamStatsRepository interface {
	Upsert(ctx context.Context, stats *models.TeamStats) error
	UpsertAll(ctx context.Context, stats map[string]*models.TeamStats) error
	GetByTeam(ctx context.Context, teamID string) (*models.TeamStats, error)
	GetAll(ctx context.Context) (map[string]*models.TeamStats, error)
}
