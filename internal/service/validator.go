package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/models"
)

// MatchValidator validates match records before aggregation.
type MatchValidator struct {
	logger *logrus.Logger
}

// NewMatchValidator creates a match validator.
func NewMatchValidator(logger *logrus.Logger) *MatchValidator {
	return &MatchValidator{logger: logger}
}

// ValidateMatch returns every problem found on a match. An empty slice means
// the match is usable.
func (v *MatchValidator) ValidateMatch(m *models.Match) []string {
	var errors []string

	if m.HomeTeam == "" {
		errors = append(errors, "home team is required")
	}
	if m.AwayTeam == "" {
		errors = append(errors, "away team is required")
	}
	if m.HomeTeam != "" && m.HomeTeam == m.AwayTeam {
		errors = append(errors, fmt.Sprintf("team cannot play itself: %s", m.HomeTeam))
	}
	if m.Season == "" {
		errors = append(errors, "season is required")
	}

	switch m.Result {
	case models.ResultHomeWin:
		if m.HomeGoals <= m.AwayGoals {
			errors = append(errors, fmt.Sprintf("result H inconsistent with score %d-%d", m.HomeGoals, m.AwayGoals))
		}
	case models.ResultAwayWin:
		if m.AwayGoals <= m.HomeGoals {
			errors = append(errors, fmt.Sprintf("result A inconsistent with score %d-%d", m.HomeGoals, m.AwayGoals))
		}
	case models.ResultDraw:
		if m.HomeGoals != m.AwayGoals {
			errors = append(errors, fmt.Sprintf("result D inconsistent with score %d-%d", m.HomeGoals, m.AwayGoals))
		}
	default:
		errors = append(errors, fmt.Sprintf("result must be H, D or A, got %q", m.Result))
	}

	if m.HomeGoals < 0 || m.AwayGoals < 0 {
		errors = append(errors, "goals cannot be negative")
	}
	if m.HomeShots < 0 || m.AwayShots < 0 {
		errors = append(errors, "shots cannot be negative")
	}
	if m.HomeShotsOnTarget < 0 || m.AwayShotsOnTarget < 0 {
		errors = append(errors, "shots on target cannot be negative")
	}
	if m.HomeShotsOnTarget > m.HomeShots || m.AwayShotsOnTarget > m.AwayShots {
		errors = append(errors, "shots on target cannot exceed total shots")
	}

	return errors
}

// FilterValid drops invalid matches, logging each rejection, and returns the
// usable remainder plus the rejected count.
func (v *MatchValidator) FilterValid(matches []models.Match) ([]models.Match, int) {
	valid := make([]models.Match, 0, len(matches))
	rejected := 0

	for i := range matches {
		problems := v.ValidateMatch(&matches[i])
		if len(problems) > 0 {
			rejected++
			v.logger.WithFields(logrus.Fields{
				"home_team": matches[i].HomeTeam,
				"away_team": matches[i].AwayTeam,
				"season":    matches[i].Season,
				"problems":  problems,
			}).Warn("Rejected invalid match")
			continue
		}
		valid = append(valid, matches[i])
	}

	return valid, rejected
}
