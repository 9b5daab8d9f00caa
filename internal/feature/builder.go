// Package feature builds fixture feature vectors from team season statistics.
package feature

import (
	"fmt"

	"github.com/yourusername/matchcast/internal/models"
)

// Set selects which feature families a backend requires.
type Set int

const (
	// SetCore covers the rate, goal and points families. Shot columns are not
	// populated; the heuristic backend never reads them.
	SetCore Set = iota
	// SetFull is the complete training layout including shot metrics,
	// required by the learned backend.
	SetFull
)

// Dim is the length of the fixture feature vector. The order and width match
// the training layout, so a model artifact fit elsewhere applies directly.
const Dim = 23

// Column indices into a Vector.
const (
	ColHomeWinRate = iota
	ColHomeDrawRate
	ColHomeGoalsScoredAvg
	ColHomeGoalsConcededAvg
	ColHomeGoalDiff
	ColHomePPG
	ColHomeHomeWinRate
	ColHomeShotsAvg
	ColHomeSOTAvg
	ColAwayWinRate
	ColAwayDrawRate
	ColAwayGoalsScoredAvg
	ColAwayGoalsConcededAvg
	ColAwayGoalDiff
	ColAwayPPG
	ColAwayAwayWinRate
	ColAwayShotsAvg
	ColAwaySOTAvg
	ColWinRateDiff
	ColPPGDiff
	ColGoalDiffDiff
	ColAttackVsDefense
	ColDefenseVsAttack
)

// Columns lists the feature names in vector order.
var Columns = [Dim]string{
	"home_win_rate",
	"home_draw_rate",
	"home_avg_goals_scored",
	"home_avg_goals_conceded",
	"home_goal_diff",
	"home_ppg",
	"home_home_win_rate",
	"home_shots_avg",
	"home_sot_avg",
	"away_win_rate",
	"away_draw_rate",
	"away_avg_goals_scored",
	"away_avg_goals_conceded",
	"away_goal_diff",
	"away_ppg",
	"away_away_win_rate",
	"away_shots_avg",
	"away_sot_avg",
	"win_rate_diff",
	"ppg_diff",
	"goal_diff_diff",
	"attack_vs_defense",
	"defense_vs_attack",
}

// Vector is a fixed-order numeric encoding of a (home, away) fixture.
// It is stateless and rebuilt per request; it holds no references to the
// records it was derived from.
type Vector struct {
	cols [Dim]float64
	set  Set
}

// Values returns a copy of the ordered feature values.
func (v Vector) Values() []float64 {
	out := make([]float64, Dim)
	copy(out[:], v.cols[:])
	return out
}

// At returns the value of the column at index i.
func (v Vector) At(i int) float64 {
	return v.cols[i]
}

// Set reports which feature set the vector was built with.
func (v Vector) Set() Set {
	return v.set
}

// Build derives a feature vector from two team records. It is a pure function
// of its inputs. Building with SetFull fails with models.ErrMissingStat when
// either record lacks shot metrics; no default is ever substituted.
func Build(home, away *models.TeamStats, set Set) (Vector, error) {
	v := Vector{set: set}

	if set == SetFull {
		if !home.HasShotStats() {
			return v, fmt.Errorf("%w: %s has no shot metrics", models.ErrMissingStat, home.TeamID)
		}
		if !away.HasShotStats() {
			return v, fmt.Errorf("%w: %s has no shot metrics", models.ErrMissingStat, away.TeamID)
		}
		v.cols[ColHomeShotsAvg] = *home.ShotsAvg
		v.cols[ColHomeSOTAvg] = *home.ShotsOnTargetAvg
		v.cols[ColAwayShotsAvg] = *away.ShotsAvg
		v.cols[ColAwaySOTAvg] = *away.ShotsOnTargetAvg
	}

	v.cols[ColHomeWinRate] = home.WinRate
	v.cols[ColHomeDrawRate] = home.DrawRate
	v.cols[ColHomeGoalsScoredAvg] = home.GoalsScoredAvg
	v.cols[ColHomeGoalsConcededAvg] = home.GoalsConcededAvg
	v.cols[ColHomeGoalDiff] = home.GoalDiffAvg
	v.cols[ColHomePPG] = home.PointsPerGame
	v.cols[ColHomeHomeWinRate] = home.HomeWinRate

	v.cols[ColAwayWinRate] = away.WinRate
	v.cols[ColAwayDrawRate] = away.DrawRate
	v.cols[ColAwayGoalsScoredAvg] = away.GoalsScoredAvg
	v.cols[ColAwayGoalsConcededAvg] = away.GoalsConcededAvg
	v.cols[ColAwayGoalDiff] = away.GoalDiffAvg
	v.cols[ColAwayPPG] = away.PointsPerGame
	v.cols[ColAwayAwayWinRate] = away.AwayWinRate

	v.cols[ColWinRateDiff] = home.WinRate - away.WinRate
	v.cols[ColPPGDiff] = home.PointsPerGame - away.PointsPerGame
	v.cols[ColGoalDiffDiff] = home.GoalDiffAvg - away.GoalDiffAvg
	v.cols[ColAttackVsDefense] = home.GoalsScoredAvg - away.GoalsConcededAvg
	v.cols[ColDefenseVsAttack] = away.GoalsScoredAvg - home.GoalsConcededAvg

	return v, nil
}
