// Package service turns raw match results into the immutable inputs the
// prediction core consumes: validated matches, per-team season statistics
// and the supervised training table.
package service

import (
	"sort"

	"github.com/yourusername/matchcast/internal/models"
)

// Aggregator computes per-team season statistics from completed fixtures.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

type teamTally struct {
	homeGames, homeWins, homeDraws int
	awayGames, awayWins, awayDraws int
	goalsScored, goalsConceded     int
	homeGoals, awayGoals           int
	shots, shotsOnTarget           int
}

// Aggregate folds every match into its two teams' tallies and derives rate
// and average statistics. Rates divide by max(games, 1) so a team with a
// single venue still gets well-defined numbers.
func (a *Aggregator) Aggregate(matches []models.Match) map[string]*models.TeamStats {
	tallies := make(map[string]*teamTally)
	tally := func(team string) *teamTally {
		t, ok := tallies[team]
		if !ok {
			t = &teamTally{}
			tallies[team] = t
		}
		return t
	}

	for _, m := range matches {
		home := tally(m.HomeTeam)
		away := tally(m.AwayTeam)

		home.homeGames++
		away.awayGames++

		switch m.Result {
		case models.ResultHomeWin:
			home.homeWins++
		case models.ResultAwayWin:
			away.awayWins++
		case models.ResultDraw:
			home.homeDraws++
			away.awayDraws++
		}

		home.goalsScored += m.HomeGoals
		home.goalsConceded += m.AwayGoals
		home.homeGoals += m.HomeGoals
		home.shots += m.HomeShots
		home.shotsOnTarget += m.HomeShotsOnTarget

		away.goalsScored += m.AwayGoals
		away.goalsConceded += m.HomeGoals
		away.awayGoals += m.AwayGoals
		away.shots += m.AwayShots
		away.shotsOnTarget += m.AwayShotsOnTarget
	}

	stats := make(map[string]*models.TeamStats, len(tallies))
	for team, t := range tallies {
		stats[team] = t.toStats(team)
	}
	return stats
}

// Teams returns the sorted team names present in the matches.
func (a *Aggregator) Teams(matches []models.Match) []string {
	seen := make(map[string]bool)
	for _, m := range matches {
		seen[m.HomeTeam] = true
		seen[m.AwayTeam] = true
	}

	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

func (t *teamTally) toStats(team string) *models.TeamStats {
	games := t.homeGames + t.awayGames
	wins := t.homeWins + t.awayWins
	draws := t.homeDraws + t.awayDraws
	losses := games - wins - draws
	points := wins*3 + draws

	div := func(n int, d int) float64 {
		if d < 1 {
			d = 1
		}
		return float64(n) / float64(d)
	}

	shotsAvg := div(t.shots, games)
	sotAvg := div(t.shotsOnTarget, games)

	return &models.TeamStats{
		TeamID:           team,
		WinRate:          div(wins, games),
		DrawRate:         div(draws, games),
		LossRate:         div(losses, games),
		GoalsScoredAvg:   div(t.goalsScored, games),
		GoalsConcededAvg: div(t.goalsConceded, games),
		GoalDiffAvg:      div(t.goalsScored-t.goalsConceded, games),
		PointsPerGame:    div(points, games),
		HomeWinRate:      div(t.homeWins, t.homeGames),
		AwayWinRate:      div(t.awayWins, t.awayGames),
		HomeGoalsAvg:     div(t.homeGoals, t.homeGames),
		AwayGoalsAvg:     div(t.awayGoals, t.awayGames),
		ShotsAvg:         &shotsAvg,
		ShotsOnTargetAvg: &sotAvg,
		MatchesPlayed:    games,
	}
}
