package service

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/models"
)

func validatorForTest() *MatchValidator {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewMatchValidator(logger)
}

func TestValidateMatch(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.Match)
		problems int
	}{
		{"valid home win", func(m *models.Match) {}, 0},
		{"valid draw", func(m *models.Match) {
			m.Result = models.ResultDraw
			m.AwayGoals = m.HomeGoals
		}, 0},
		{"missing home team", func(m *models.Match) { m.HomeTeam = "" }, 1},
		{"missing season", func(m *models.Match) { m.Season = "" }, 1},
		{"team plays itself", func(m *models.Match) { m.AwayTeam = m.HomeTeam }, 1},
		{"unknown result code", func(m *models.Match) { m.Result = "X" }, 1},
		{"home win without lead", func(m *models.Match) { m.AwayGoals = 5 }, 1},
		{"draw with unequal score", func(m *models.Match) { m.Result = models.ResultDraw }, 1},
		{"negative goals", func(m *models.Match) {
			m.Result = models.ResultAwayWin
			m.HomeGoals = -1
		}, 1},
		{"sot exceeds shots", func(m *models.Match) { m.HomeShotsOnTarget = 99 }, 1},
	}

	v := validatorForTest()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fixture("Arsenal", "Chelsea", 2, 0, models.ResultHomeWin, 14, 8, 6, 3)
			tt.mutate(&m)

			problems := v.ValidateMatch(&m)
			if len(problems) != tt.problems {
				t.Errorf("expected %d problems, got %d: %v", tt.problems, len(problems), problems)
			}
		})
	}
}

func TestFilterValid(t *testing.T) {
	matches := []models.Match{
		fixture("Arsenal", "Chelsea", 2, 0, "H", 14, 8, 6, 3),
		fixture("", "Wolves", 1, 0, "H", 10, 5, 4, 2),
		fixture("Fulham", "Brentford", 0, 2, "A", 8, 14, 2, 5),
		fixture("Everton", "Everton", 1, 1, "D", 9, 9, 3, 3),
	}

	valid, rejected := validatorForTest().FilterValid(matches)
	if len(valid) != 2 || rejected != 2 {
		t.Fatalf("expected 2 valid and 2 rejected, got %d and %d", len(valid), rejected)
	}
	if valid[0].HomeTeam != "Arsenal" || valid[1].HomeTeam != "Fulham" {
		t.Errorf("kept wrong matches: %s, %s", valid[0].HomeTeam, valid[1].HomeTeam)
	}
}
