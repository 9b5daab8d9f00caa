package predict

import (
	"fmt"
	"math"

	"github.com/yourusername/matchcast/internal/models"
)

// Finalize normalizes raw backend scores into a PredictionResult. Home and
// draw percentages are rounded to one decimal independently; the away
// percentage is assigned as the residual of 100.0, so the three always sum
// to exactly 100.0 in one-decimal arithmetic. Away absorbs rounding drift.
func Finalize(raw RawScores) (*models.PredictionResult, error) {
	total := raw.Total()
	if total <= 0 {
		return nil, fmt.Errorf("%w: total %v", models.ErrDegenerateScore, total)
	}

	homePct := math.Round(raw.Home/total*1000) / 10
	drawPct := math.Round(raw.Draw/total*1000) / 10
	awayPct := math.Round((100-homePct-drawPct)*10) / 10

	result := &models.PredictionResult{
		HomeWinPct: homePct,
		DrawPct:    drawPct,
		AwayWinPct: awayPct,
		Outcome:    decide(homePct, drawPct, awayPct),
		Confidence: math.Max(homePct, math.Max(drawPct, awayPct)),
	}
	return result, nil
}

// decide picks the predicted label with a home-biased tie-break: home wins
// any tie it is part of, away wins a tie with draw, and draw is only chosen
// when it strictly beats both.
func decide(homePct, drawPct, awayPct float64) models.Outcome {
	switch {
	case homePct >= drawPct && homePct >= awayPct:
		return models.OutcomeHomeWin
	case awayPct >= drawPct:
		return models.OutcomeAwayWin
	default:
		return models.OutcomeDraw
	}
}
