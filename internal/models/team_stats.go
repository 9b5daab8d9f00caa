package models

// TeamStats holds a team's aggregated season statistics.
// A record is computed once per ingestion run and never mutated afterwards;
// the prediction path only reads it.
type TeamStats struct {
	TeamID           string  `db:"team_id" json:"team_id" validate:"required"`
	WinRate          float64 `db:"win_rate" json:"win_rate" validate:"gte=0,lte=1"`
	DrawRate         float64 `db:"draw_rate" json:"draw_rate" validate:"gte=0,lte=1"`
	LossRate         float64 `db:"loss_rate" json:"loss_rate" validate:"gte=0,lte=1"`
	GoalsScoredAvg   float64 `db:"goals_scored_avg" json:"avg_goals_scored" validate:"gte=0"`
	GoalsConcededAvg float64 `db:"goals_conceded_avg" json:"avg_goals_conceded" validate:"gte=0"`
	GoalDiffAvg      float64 `db:"goal_diff_avg" json:"goal_difference"`
	PointsPerGame    float64 `db:"points_per_game" json:"points_per_game" validate:"gte=0"`
	HomeWinRate      float64 `db:"home_win_rate" json:"home_win_rate" validate:"gte=0,lte=1"`
	AwayWinRate      float64 `db:"away_win_rate" json:"away_win_rate" validate:"gte=0,lte=1"`
	HomeGoalsAvg     float64 `db:"home_goals_avg" json:"home_goals_avg" validate:"gte=0"`
	AwayGoalsAvg     float64 `db:"away_goals_avg" json:"away_goals_avg" validate:"gte=0"`

	// Shot metrics are only present when the underlying match data carried
	// shot columns. The learned backend requires them; the heuristic backend
	// does not.
	ShotsAvg         *float64 `db:"shots_avg" json:"shots_avg,omitempty"`
	ShotsOnTargetAvg *float64 `db:"shots_on_target_avg" json:"shots_on_target_avg,omitempty"`

	MatchesPlayed int `db:"matches_played" json:"matches_played" validate:"gte=0"`
}

// HasShotStats reports whether both shot metrics are present.
func (s *TeamStats) HasShotStats() bool {
	return s.ShotsAvg != nil && s.ShotsOnTargetAvg != nil
}
