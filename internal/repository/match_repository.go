package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/matchcast/internal/database"
	"github.com/yourusername/matchcast/internal/models"
)

const matchColumns = `id, season, home_team, away_team, home_goals, away_goals, result,
	home_shots, away_shots, home_shots_on_target, away_shots_on_target, source, created_at`

const errScanMatch = "failed to scan match: %w"

// PostgresMatchRepository implements MatchRepository for PostgreSQL.
type PostgresMatchRepository struct {
	db *database.DB
}

// NewPostgresMatchRepository creates a match repository.
func NewPostgresMatchRepository(db *database.DB) MatchRepository {
	return &PostgresMatchRepository{db: db}
}

// Create inserts one match. Re-ingesting the same fixture updates it in
// place, so repeated runs over the same seasons stay idempotent.
func (r *PostgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	return r.create(ctx, r.db.GetPool(), match)
}

func (r *PostgresMatchRepository) create(ctx context.Context, exec database.Executor, match *models.Match) error {
	query := `
		INSERT INTO matches (` + matchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (season, home_team, away_team) DO UPDATE SET
			home_goals = EXCLUDED.home_goals,
			away_goals = EXCLUDED.away_goals,
			result = EXCLUDED.result,
			home_shots = EXCLUDED.home_shots,
			away_shots = EXCLUDED.away_shots,
			home_shots_on_target = EXCLUDED.home_shots_on_target,
			away_shots_on_target = EXCLUDED.away_shots_on_target,
			source = EXCLUDED.source
	`

	_, err := exec.Exec(ctx, query,
		match.ID, match.Season, match.HomeTeam, match.AwayTeam,
		match.HomeGoals, match.AwayGoals, match.Result,
		match.HomeShots, match.AwayShots, match.HomeShotsOnTarget, match.AwayShotsOnTarget,
		match.Source, match.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

// CreateBatch inserts matches inside one transaction. A failure on any row
// rolls back the whole batch.
func (r *PostgresMatchRepository) CreateBatch(ctx context.Context, matches []models.Match) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for i := range matches {
			if err := r.create(ctx, tx, &matches[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a match by ID.
func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	match := &models.Match{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&match.ID, &match.Season, &match.HomeTeam, &match.AwayTeam,
		&match.HomeGoals, &match.AwayGoals, &match.Result,
		&match.HomeShots, &match.AwayShots, &match.HomeShotsOnTarget, &match.AwayShotsOnTarget,
		&match.Source, &match.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// GetBySeason retrieves all matches in a season.
func (r *PostgresMatchRepository) GetBySeason(ctx context.Context, season string) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE season = $1 ORDER BY created_at, home_team`
	return r.queryMatches(ctx, query, season)
}

// GetByTeam retrieves all matches a team played, home or away.
func (r *PostgresMatchRepository) GetByTeam(ctx context.Context, team string) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE home_team = $1 OR away_team = $1 ORDER BY season, created_at`
	return r.queryMatches(ctx, query, team)
}

// Count returns the number of stored matches.
func (r *PostgresMatchRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetPool().QueryRow(ctx, "SELECT COUNT(*) FROM matches").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func (r *PostgresMatchRepository) queryMatches(ctx context.Context, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		match := &models.Match{}
		err := rows.Scan(
			&match.ID, &match.Season, &match.HomeTeam, &match.AwayTeam,
			&match.HomeGoals, &match.AwayGoals, &match.Result,
			&match.HomeShots, &match.AwayShots, &match.HomeShotsOnTarget, &match.AwayShotsOnTarget,
			&match.Source, &match.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanMatch, err)
		}
		matches = append(matches, match)
	}

	return matches, rows.Err()
}
