package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yourusername/matchcast/internal/database"
	"github.com/yourusername/matchcast/internal/models"
)

const statsColumns = `team_id, win_rate, draw_rate, loss_rate, goals_scored_avg, goals_conceded_avg,
	goal_diff_avg, points_per_game, home_win_rate, away_win_rate, home_goals_avg, away_goals_avg,
	shots_avg, shots_on_target_avg, matches_played`

// PostgresTeamStatsRepository implements TeamStatsRepository for PostgreSQL.
type PostgresTeamStatsRepository struct {
	db *database.DB
}

// NewPostgresTeamStatsRepository creates a team stats repository.
func NewPostgresTeamStatsRepository(db *database.DB) TeamStatsRepository {
	return &PostgresTeamStatsRepository{db: db}
}

// Upsert writes one team's statistics, replacing any previous row.
func (r *PostgresTeamStatsRepository) Upsert(ctx context.Context, stats *models.TeamStats) error {
	return r.upsert(ctx, r.db.GetPool(), stats)
}

func (r *PostgresTeamStatsRepository) upsert(ctx context.Context, exec database.Executor, stats *models.TeamStats) error {
	query := `
		INSERT INTO team_stats (` + statsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (team_id) DO UPDATE SET
			win_rate = EXCLUDED.win_rate,
			draw_rate = EXCLUDED.draw_rate,
			loss_rate = EXCLUDED.loss_rate,
			goals_scored_avg = EXCLUDED.goals_scored_avg,
			goals_conceded_avg = EXCLUDED.goals_conceded_avg,
			goal_diff_avg = EXCLUDED.goal_diff_avg,
			points_per_game = EXCLUDED.points_per_game,
			home_win_rate = EXCLUDED.home_win_rate,
			away_win_rate = EXCLUDED.away_win_rate,
			home_goals_avg = EXCLUDED.home_goals_avg,
			away_goals_avg = EXCLUDED.away_goals_avg,
			shots_avg = EXCLUDED.shots_avg,
			shots_on_target_avg = EXCLUDED.shots_on_target_avg,
			matches_played = EXCLUDED.matches_played,
			updated_at = NOW()
	`

	_, err := exec.Exec(ctx, query,
		stats.TeamID, stats.WinRate, stats.DrawRate, stats.LossRate,
		stats.GoalsScoredAvg, stats.GoalsConcededAvg, stats.GoalDiffAvg, stats.PointsPerGame,
		stats.HomeWinRate, stats.AwayWinRate, stats.HomeGoalsAvg, stats.AwayGoalsAvg,
		stats.ShotsAvg, stats.ShotsOnTargetAvg, stats.MatchesPlayed,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert team stats: %w", err)
	}
	return nil
}

// UpsertAll writes every team's statistics inside one transaction. A failure
// on any row rolls back the whole batch.
func (r *PostgresTeamStatsRepository) UpsertAll(ctx context.Context, stats map[string]*models.TeamStats) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, s := range stats {
			if err := r.upsert(ctx, tx, s); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByTeam retrieves one team's statistics.
func (r *PostgresTeamStatsRepository) GetByTeam(ctx context.Context, teamID string) (*models.TeamStats, error) {
	query := `SELECT ` + statsColumns + ` FROM team_stats WHERE team_id = $1`

	stats := &models.TeamStats{}
	err := r.db.GetPool().QueryRow(ctx, query, teamID).Scan(
		&stats.TeamID, &stats.WinRate, &stats.DrawRate, &stats.LossRate,
		&stats.GoalsScoredAvg, &stats.GoalsConcededAvg, &stats.GoalDiffAvg, &stats.PointsPerGame,
		&stats.HomeWinRate, &stats.AwayWinRate, &stats.HomeGoalsAvg, &stats.AwayGoalsAvg,
		&stats.ShotsAvg, &stats.ShotsOnTargetAvg, &stats.MatchesPlayed,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team stats: %w", err)
	}
	return stats, nil
}

// GetAll retrieves every team's statistics keyed by team.
func (r *PostgresTeamStatsRepository) GetAll(ctx context.Context) (map[string]*models.TeamStats, error) {
	query := `SELECT ` + statsColumns + ` FROM team_stats ORDER BY team_id`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*models.TeamStats)
	for rows.Next() {
		stats := &models.TeamStats{}
		err := rows.Scan(
			&stats.TeamID, &stats.WinRate, &stats.DrawRate, &stats.LossRate,
			&stats.GoalsScoredAvg, &stats.GoalsConcededAvg, &stats.GoalDiffAvg, &stats.PointsPerGame,
			&stats.HomeWinRate, &stats.AwayWinRate, &stats.HomeGoalsAvg, &stats.AwayGoalsAvg,
			&stats.ShotsAvg, &stats.ShotsOnTargetAvg, &stats.MatchesPlayed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team stats: %w", err)
		}
		all[stats.TeamID] = stats
	}

	return all, rows.Err()
}
