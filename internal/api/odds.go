package api

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/matchcast/internal/models"
)

var hundred = decimal.NewFromInt(100)

// fairOdds converts the outcome percentages into break-even decimal odds,
// rounded to two places. A percentage is never zero after normalization
// because every clamp floor is positive, so the division is always defined.
func fairOdds(result *models.PredictionResult) FairOdds {
	return FairOdds{
		HomeWin: fairOdd(result.HomeWinPct),
		Draw:    fairOdd(result.DrawPct),
		AwayWin: fairOdd(result.AwayWinPct),
	}
}

func fairOdd(pct float64) string {
	if pct <= 0 {
		return ""
	}
	return hundred.Div(decimal.NewFromFloat(pct)).Round(2).StringFixed(2)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
