package models

import (
	"time"

	"github.com/google/uuid"
)

// Result codes as they appear in football-data.co.uk CSVs (FTR column).
const (
	ResultHomeWin = "H"
	ResultDraw    = "D"
	ResultAwayWin = "A"
)

// Match represents a single completed fixture from the historical dataset.
type Match struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Season            string    `db:"season" json:"season" validate:"required"`
	HomeTeam          string    `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam          string    `db:"away_team" json:"away_team" validate:"required"`
	HomeGoals         int       `db:"home_goals" json:"home_goals" validate:"gte=0"`
	AwayGoals         int       `db:"away_goals" json:"away_goals" validate:"gte=0"`
	Result            string    `db:"result" json:"result" validate:"required,oneof=H D A"`
	HomeShots         int       `db:"home_shots" json:"home_shots" validate:"gte=0"`
	AwayShots         int       `db:"away_shots" json:"away_shots" validate:"gte=0"`
	HomeShotsOnTarget int       `db:"home_shots_on_target" json:"home_shots_on_target" validate:"gte=0"`
	AwayShotsOnTarget int       `db:"away_shots_on_target" json:"away_shots_on_target" validate:"gte=0"`
	Source            string    `db:"source" json:"source"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
