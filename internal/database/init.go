package database

import (
	"context"
	"fmt"

	"github.com/yourusername/matchcast/internal/config"
)

// schema holds the tables the service persists into. Ingestion runs are
// idempotent per (season, home, away) pair; team stats are replaced wholesale.
const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id UUID PRIMARY KEY,
	season TEXT NOT NULL,
	home_team TEXT NOT NULL,
	away_team TEXT NOT NULL,
	home_goals INT NOT NULL,
	away_goals INT NOT NULL,
	result CHAR(1) NOT NULL,
	home_shots INT NOT NULL,
	away_shots INT NOT NULL,
	home_shots_on_target INT NOT NULL,
	away_shots_on_target INT NOT NULL,
	source TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (season, home_team, away_team)
);

CREATE TABLE IF NOT EXISTS team_stats (
	team_id TEXT PRIMARY KEY,
	win_rate DOUBLE PRECISION NOT NULL,
	draw_rate DOUBLE PRECISION NOT NULL,
	loss_rate DOUBLE PRECISION NOT NULL,
	goals_scored_avg DOUBLE PRECISION NOT NULL,
	goals_conceded_avg DOUBLE PRECISION NOT NULL,
	goal_diff_avg DOUBLE PRECISION NOT NULL,
	points_per_game DOUBLE PRECISION NOT NULL,
	home_win_rate DOUBLE PRECISION NOT NULL,
	away_win_rate DOUBLE PRECISION NOT NULL,
	home_goals_avg DOUBLE PRECISION NOT NULL,
	away_goals_avg DOUBLE PRECISION NOT NULL,
	shots_avg DOUBLE PRECISION,
	shots_on_target_avg DOUBLE PRECISION,
	matches_played INT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Initialize creates a connection pool and ensures the schema exists.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if _, err := db.pool.Exec(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return db, nil
}
